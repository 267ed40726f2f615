package config

import "github.com/vk/schemabind/internal/targetver"

// Options is the raw, loader-produced option set for one run: every value a
// user can configure, before resolution or validation. String-valued
// strategy axes are still strings here; Resolve turns them into their
// variant types or rejects them.
type Options struct {
	OutputDirectory string
	SourceDirectory string
	SourcePaths     []string
	TargetPackage   string

	GenerateBuilders      bool
	IncludeTypeInfo       bool
	UsePrimitives         bool
	AddCompileSourceRoot  bool
	Skip                  bool
	UseLongIntegers       bool
	UseBigIntegers        bool
	UseDoubleNumbers      bool
	UseBigDecimals        bool
	IncludeHashcodeEquals bool
	IncludeToString       bool
	UseTitleAsClassname   bool
	IncludeJSR303         bool
	IncludeJSR305         bool
	UseOptionalForGetters bool
	RemoveOldOutput       bool
	UseJodaDates          bool
	UseJodaLocalDates     bool
	UseJodaLocalTimes     bool
	// UseCommonsLang3 is recognized but deprecated; configuring it draws a
	// once-per-run warning.
	UseCommonsLang3 bool
	Parcelable      bool
	Serializable    bool

	InitializeCollections bool

	IncludeConstructors                    bool
	ConstructorsRequiredPropertiesOnly     bool
	IncludeRequiredPropertiesConstructor   bool
	IncludeAllPropertiesConstructor        bool
	IncludeCopyConstructor                 bool
	IncludeAdditionalProperties            bool
	IncludeGetters                         bool
	IncludeSetters                         bool
	IncludeDynamicAccessors                bool
	IncludeDynamicGetters                  bool
	IncludeDynamicSetters                  bool
	IncludeDynamicBuilders                 bool
	UseInnerClassBuilders                  bool
	IncludeGeneratedAnnotation             bool
	UseJakartaValidation                   bool
	IncludeConstructorPropertiesAnnotation bool

	FormatDates     bool
	FormatTimes     bool
	FormatDateTimes bool

	PropertyWordDelimiters string
	ClassNamePrefix        string
	ClassNameSuffix        string
	FileExtensions         []string
	ToStringExcludes       []string
	OutputEncoding         string

	DateTimeType string
	DateType     string
	TimeType     string
	// CustomDatePattern and CustomDateTimePattern are deliberately
	// independent options even though historic configs sometimes treated
	// them as one key.
	CustomDatePattern     string
	CustomTimePattern     string
	CustomDateTimePattern string

	RefFragmentPathDelimiters string

	AnnotationStyle string
	InclusionLevel  string
	SourceType      string
	SourceSortOrder string

	CustomAnnotator   string
	CustomRuleFactory string

	Includes []string
	Excludes []string

	FormatTypeMapping map[string]string

	TargetVersion string

	// Env carries the host build environment facts used only by
	// target-version detection.
	Env targetver.BuildEnv
}

// DefaultOptions returns the documented default for every option. Loaders
// start from this value and overlay whatever the user configured.
func DefaultOptions() Options {
	return Options{
		OutputDirectory:                 "generated-sources/schemabind",
		AddCompileSourceRoot:            true,
		UseDoubleNumbers:                true,
		IncludeHashcodeEquals:           true,
		IncludeToString:                 true,
		InitializeCollections:           true,
		IncludeAllPropertiesConstructor: true,
		IncludeAdditionalProperties:     true,
		IncludeGetters:                  true,
		IncludeSetters:                  true,
		IncludeGeneratedAnnotation:      true,
		PropertyWordDelimiters:          "- _",
		OutputEncoding:                  "UTF-8",
		RefFragmentPathDelimiters:       "#/.",
		AnnotationStyle:                 "jackson2",
		InclusionLevel:                  "NON_NULL",
		SourceType:                      "jsonschema",
		SourceSortOrder:                 "OS",
		FormatTypeMapping:               map[string]string{},
	}
}

// filteringEnabled reports whether the user configured any include or
// exclude patterns.
func (o *Options) filteringEnabled() bool {
	return len(o.Includes) > 0 || len(o.Excludes) > 0
}
