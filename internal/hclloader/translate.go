package hclloader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/schemabind/internal/config"
	"github.com/vk/schemabind/internal/targetver"
)

// generateBlock mirrors the generate block attribute for attribute. Every
// field is a pointer (or expression) so that "not configured" is
// distinguishable from a configured zero value; mergeInto only overlays what
// the user actually wrote.
type generateBlock struct {
	OutputDirectory *string   `hcl:"output_directory,optional"`
	SourceDirectory *string   `hcl:"source_directory,optional"`
	SourcePaths     *[]string `hcl:"source_paths,optional"`
	TargetPackage   *string   `hcl:"target_package,optional"`

	GenerateBuilders      *bool `hcl:"generate_builders,optional"`
	IncludeTypeInfo       *bool `hcl:"include_type_info,optional"`
	UsePrimitives         *bool `hcl:"use_primitives,optional"`
	AddCompileSourceRoot  *bool `hcl:"add_compile_source_root,optional"`
	Skip                  *bool `hcl:"skip,optional"`
	UseLongIntegers       *bool `hcl:"use_long_integers,optional"`
	UseBigIntegers        *bool `hcl:"use_big_integers,optional"`
	UseDoubleNumbers      *bool `hcl:"use_double_numbers,optional"`
	UseBigDecimals        *bool `hcl:"use_big_decimals,optional"`
	IncludeHashcodeEquals *bool `hcl:"include_hashcode_and_equals,optional"`
	IncludeToString       *bool `hcl:"include_to_string,optional"`
	UseTitleAsClassname   *bool `hcl:"use_title_as_classname,optional"`
	IncludeJSR303         *bool `hcl:"include_jsr303_annotations,optional"`
	IncludeJSR305         *bool `hcl:"include_jsr305_annotations,optional"`
	UseOptionalForGetters *bool `hcl:"use_optional_for_getters,optional"`
	RemoveOldOutput       *bool `hcl:"remove_old_output,optional"`
	UseJodaDates          *bool `hcl:"use_joda_dates,optional"`
	UseJodaLocalDates     *bool `hcl:"use_joda_local_dates,optional"`
	UseJodaLocalTimes     *bool `hcl:"use_joda_local_times,optional"`
	UseCommonsLang3       *bool `hcl:"use_commons_lang3,optional"`
	Parcelable            *bool `hcl:"parcelable,optional"`
	Serializable          *bool `hcl:"serializable,optional"`
	InitializeCollections *bool `hcl:"initialize_collections,optional"`

	IncludeConstructors                    *bool `hcl:"include_constructors,optional"`
	ConstructorsRequiredPropertiesOnly     *bool `hcl:"constructors_required_properties_only,optional"`
	IncludeRequiredPropertiesConstructor   *bool `hcl:"include_required_properties_constructor,optional"`
	IncludeAllPropertiesConstructor        *bool `hcl:"include_all_properties_constructor,optional"`
	IncludeCopyConstructor                 *bool `hcl:"include_copy_constructor,optional"`
	IncludeAdditionalProperties            *bool `hcl:"include_additional_properties,optional"`
	IncludeGetters                         *bool `hcl:"include_getters,optional"`
	IncludeSetters                         *bool `hcl:"include_setters,optional"`
	IncludeDynamicAccessors                *bool `hcl:"include_dynamic_accessors,optional"`
	IncludeDynamicGetters                  *bool `hcl:"include_dynamic_getters,optional"`
	IncludeDynamicSetters                  *bool `hcl:"include_dynamic_setters,optional"`
	IncludeDynamicBuilders                 *bool `hcl:"include_dynamic_builders,optional"`
	UseInnerClassBuilders                  *bool `hcl:"use_inner_class_builders,optional"`
	IncludeGeneratedAnnotation             *bool `hcl:"include_generated_annotation,optional"`
	UseJakartaValidation                   *bool `hcl:"use_jakarta_validation,optional"`
	IncludeConstructorPropertiesAnnotation *bool `hcl:"include_constructor_properties_annotation,optional"`

	FormatDates     *bool `hcl:"format_dates,optional"`
	FormatTimes     *bool `hcl:"format_times,optional"`
	FormatDateTimes *bool `hcl:"format_date_times,optional"`

	PropertyWordDelimiters *string   `hcl:"property_word_delimiters,optional"`
	ClassNamePrefix        *string   `hcl:"class_name_prefix,optional"`
	ClassNameSuffix        *string   `hcl:"class_name_suffix,optional"`
	FileExtensions         *[]string `hcl:"file_extensions,optional"`
	ToStringExcludes       *[]string `hcl:"to_string_excludes,optional"`
	OutputEncoding         *string   `hcl:"output_encoding,optional"`

	DateTimeType          *string `hcl:"date_time_type,optional"`
	DateType              *string `hcl:"date_type,optional"`
	TimeType              *string `hcl:"time_type,optional"`
	CustomDatePattern     *string `hcl:"custom_date_pattern,optional"`
	CustomTimePattern     *string `hcl:"custom_time_pattern,optional"`
	CustomDateTimePattern *string `hcl:"custom_date_time_pattern,optional"`

	RefFragmentPathDelimiters *string `hcl:"ref_fragment_path_delimiters,optional"`

	AnnotationStyle *string `hcl:"annotation_style,optional"`
	InclusionLevel  *string `hcl:"inclusion_level,optional"`
	SourceType      *string `hcl:"source_type,optional"`
	SourceSortOrder *string `hcl:"source_sort_order,optional"`

	CustomAnnotator   *string `hcl:"custom_annotator,optional"`
	CustomRuleFactory *string `hcl:"custom_rule_factory,optional"`

	Includes *[]string `hcl:"includes,optional"`
	Excludes *[]string `hcl:"excludes,optional"`

	// format_type_mapping is kept as a raw expression and evaluated through
	// cty so a malformed mapping reports the attribute, not a decode panic.
	FormatTypeMapping hcl.Expression `hcl:"format_type_mapping,optional"`

	TargetVersion *string `hcl:"target_version,optional"`
}

// hostBlock mirrors the host block: build-environment facts consumed only by
// target-version detection.
type hostBlock struct {
	Properties     map[string]string `hcl:"properties,optional"`
	RuntimeVersion *string           `hcl:"runtime_version,optional"`
	Compiler       *compilerBlock    `hcl:"compiler,block"`
}

type compilerBlock struct {
	Source  *string `hcl:"source,optional"`
	Release *string `hcl:"release,optional"`
}

func (b *generateBlock) mergeInto(opts *config.Options) error {
	setString(&opts.OutputDirectory, b.OutputDirectory)
	setString(&opts.SourceDirectory, b.SourceDirectory)
	setStrings(&opts.SourcePaths, b.SourcePaths)
	setString(&opts.TargetPackage, b.TargetPackage)

	setBool(&opts.GenerateBuilders, b.GenerateBuilders)
	setBool(&opts.IncludeTypeInfo, b.IncludeTypeInfo)
	setBool(&opts.UsePrimitives, b.UsePrimitives)
	setBool(&opts.AddCompileSourceRoot, b.AddCompileSourceRoot)
	setBool(&opts.Skip, b.Skip)
	setBool(&opts.UseLongIntegers, b.UseLongIntegers)
	setBool(&opts.UseBigIntegers, b.UseBigIntegers)
	setBool(&opts.UseDoubleNumbers, b.UseDoubleNumbers)
	setBool(&opts.UseBigDecimals, b.UseBigDecimals)
	setBool(&opts.IncludeHashcodeEquals, b.IncludeHashcodeEquals)
	setBool(&opts.IncludeToString, b.IncludeToString)
	setBool(&opts.UseTitleAsClassname, b.UseTitleAsClassname)
	setBool(&opts.IncludeJSR303, b.IncludeJSR303)
	setBool(&opts.IncludeJSR305, b.IncludeJSR305)
	setBool(&opts.UseOptionalForGetters, b.UseOptionalForGetters)
	setBool(&opts.RemoveOldOutput, b.RemoveOldOutput)
	setBool(&opts.UseJodaDates, b.UseJodaDates)
	setBool(&opts.UseJodaLocalDates, b.UseJodaLocalDates)
	setBool(&opts.UseJodaLocalTimes, b.UseJodaLocalTimes)
	setBool(&opts.UseCommonsLang3, b.UseCommonsLang3)
	setBool(&opts.Parcelable, b.Parcelable)
	setBool(&opts.Serializable, b.Serializable)
	setBool(&opts.InitializeCollections, b.InitializeCollections)

	setBool(&opts.IncludeConstructors, b.IncludeConstructors)
	setBool(&opts.ConstructorsRequiredPropertiesOnly, b.ConstructorsRequiredPropertiesOnly)
	setBool(&opts.IncludeRequiredPropertiesConstructor, b.IncludeRequiredPropertiesConstructor)
	setBool(&opts.IncludeAllPropertiesConstructor, b.IncludeAllPropertiesConstructor)
	setBool(&opts.IncludeCopyConstructor, b.IncludeCopyConstructor)
	setBool(&opts.IncludeAdditionalProperties, b.IncludeAdditionalProperties)
	setBool(&opts.IncludeGetters, b.IncludeGetters)
	setBool(&opts.IncludeSetters, b.IncludeSetters)
	setBool(&opts.IncludeDynamicAccessors, b.IncludeDynamicAccessors)
	setBool(&opts.IncludeDynamicGetters, b.IncludeDynamicGetters)
	setBool(&opts.IncludeDynamicSetters, b.IncludeDynamicSetters)
	setBool(&opts.IncludeDynamicBuilders, b.IncludeDynamicBuilders)
	setBool(&opts.UseInnerClassBuilders, b.UseInnerClassBuilders)
	setBool(&opts.IncludeGeneratedAnnotation, b.IncludeGeneratedAnnotation)
	setBool(&opts.UseJakartaValidation, b.UseJakartaValidation)
	setBool(&opts.IncludeConstructorPropertiesAnnotation, b.IncludeConstructorPropertiesAnnotation)

	setBool(&opts.FormatDates, b.FormatDates)
	setBool(&opts.FormatTimes, b.FormatTimes)
	setBool(&opts.FormatDateTimes, b.FormatDateTimes)

	setString(&opts.PropertyWordDelimiters, b.PropertyWordDelimiters)
	setString(&opts.ClassNamePrefix, b.ClassNamePrefix)
	setString(&opts.ClassNameSuffix, b.ClassNameSuffix)
	setStrings(&opts.FileExtensions, b.FileExtensions)
	setStrings(&opts.ToStringExcludes, b.ToStringExcludes)
	setString(&opts.OutputEncoding, b.OutputEncoding)

	setString(&opts.DateTimeType, b.DateTimeType)
	setString(&opts.DateType, b.DateType)
	setString(&opts.TimeType, b.TimeType)
	setString(&opts.CustomDatePattern, b.CustomDatePattern)
	setString(&opts.CustomTimePattern, b.CustomTimePattern)
	setString(&opts.CustomDateTimePattern, b.CustomDateTimePattern)

	setString(&opts.RefFragmentPathDelimiters, b.RefFragmentPathDelimiters)

	setString(&opts.AnnotationStyle, b.AnnotationStyle)
	setString(&opts.InclusionLevel, b.InclusionLevel)
	setString(&opts.SourceType, b.SourceType)
	setString(&opts.SourceSortOrder, b.SourceSortOrder)

	setString(&opts.CustomAnnotator, b.CustomAnnotator)
	setString(&opts.CustomRuleFactory, b.CustomRuleFactory)

	setStrings(&opts.Includes, b.Includes)
	setStrings(&opts.Excludes, b.Excludes)

	setString(&opts.TargetVersion, b.TargetVersion)

	mapping, err := decodeFormatTypeMapping(b.FormatTypeMapping)
	if err != nil {
		return err
	}
	if mapping != nil {
		opts.FormatTypeMapping = mapping
	}

	return nil
}

func (b *hostBlock) mergeInto(opts *config.Options) {
	env := targetver.BuildEnv{Properties: b.Properties}
	if b.Compiler != nil {
		if b.Compiler.Source != nil {
			env.CompilerSource = *b.Compiler.Source
		}
		if b.Compiler.Release != nil {
			env.CompilerRelease = *b.Compiler.Release
		}
	}
	if b.RuntimeVersion != nil {
		env.RuntimeVersion = *b.RuntimeVersion
	}
	opts.Env = env
}

// decodeFormatTypeMapping evaluates the format_type_mapping expression into
// a string-to-string table. Returns nil when the attribute was not set.
func decodeFormatTypeMapping(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("format_type_mapping: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("format_type_mapping must map format names to type names: %w", err)
	}

	mapping := make(map[string]string)
	for name, v := range converted.AsValueMap() {
		mapping[name] = v.AsString()
	}
	return mapping, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
