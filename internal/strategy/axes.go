package strategy

// AnnotationStyle selects the serialization-annotation library targeted by
// generated types.
type AnnotationStyle int

const (
	// Jackson is an alias kept for configs written against 1.x; it resolves
	// to the same emission behavior as Jackson2 downstream.
	Jackson AnnotationStyle = iota
	Jackson2
	JSONB
	JSONB2
	Gson
	Moshi1
	NoAnnotations
)

var annotationStyles = map[string]AnnotationStyle{
	"jackson":  Jackson,
	"jackson2": Jackson2,
	"jsonb":    JSONB,
	"jsonb2":   JSONB2,
	"gson":     Gson,
	"moshi1":   Moshi1,
	"none":     NoAnnotations,
}

func (s AnnotationStyle) String() string {
	switch s {
	case Jackson:
		return "jackson"
	case Jackson2:
		return "jackson2"
	case JSONB:
		return "jsonb"
	case JSONB2:
		return "jsonb2"
	case Gson:
		return "gson"
	case Moshi1:
		return "moshi1"
	default:
		return "none"
	}
}

// ParseAnnotationStyle resolves the annotation_style option.
func ParseAnnotationStyle(raw string) (AnnotationStyle, error) {
	return resolve("annotation_style", raw, annotationStyles)
}

// InclusionLevel controls which property values the serializer includes.
type InclusionLevel int

const (
	Always InclusionLevel = iota
	NonAbsent
	NonDefault
	NonEmpty
	NonNull
	UseDefaults
)

var inclusionLevels = map[string]InclusionLevel{
	"always":       Always,
	"non_absent":   NonAbsent,
	"non_default":  NonDefault,
	"non_empty":    NonEmpty,
	"non_null":     NonNull,
	"use_defaults": UseDefaults,
}

func (l InclusionLevel) String() string {
	switch l {
	case Always:
		return "ALWAYS"
	case NonAbsent:
		return "NON_ABSENT"
	case NonDefault:
		return "NON_DEFAULT"
	case NonEmpty:
		return "NON_EMPTY"
	case NonNull:
		return "NON_NULL"
	default:
		return "USE_DEFAULTS"
	}
}

// ParseInclusionLevel resolves the inclusion_level option.
func ParseInclusionLevel(raw string) (InclusionLevel, error) {
	return resolve("inclusion_level", raw, inclusionLevels)
}

// SourceType describes the kind of input documents a run reads.
type SourceType int

const (
	JSONSchema SourceType = iota
	JSON
	YAMLSchema
	YAML
)

var sourceTypes = map[string]SourceType{
	"jsonschema": JSONSchema,
	"json":       JSON,
	"yamlschema": YAMLSchema,
	"yaml":       YAML,
}

func (t SourceType) String() string {
	switch t {
	case JSONSchema:
		return "jsonschema"
	case JSON:
		return "json"
	case YAMLSchema:
		return "yamlschema"
	default:
		return "yaml"
	}
}

// ParseSourceType resolves the source_type option.
func ParseSourceType(raw string) (SourceType, error) {
	return resolve("source_type", raw, sourceTypes)
}

// SortOrder controls the traversal order applied when a directory location
// is expanded into files.
type SortOrder int

const (
	// OS leaves ordering to the operating system's directory listing.
	OS SortOrder = iota
	// FilesFirst sorts case-sensitively and visits files before
	// subdirectories (breadth-first).
	FilesFirst
	// SubdirsFirst sorts case-sensitively and visits subdirectories before
	// files (depth-first).
	SubdirsFirst
)

var sortOrders = map[string]SortOrder{
	"os":            OS,
	"files_first":   FilesFirst,
	"subdirs_first": SubdirsFirst,
}

func (o SortOrder) String() string {
	switch o {
	case FilesFirst:
		return "FILES_FIRST"
	case SubdirsFirst:
		return "SUBDIRS_FIRST"
	default:
		return "OS"
	}
}

// ParseSortOrder resolves the source_sort_order option.
func ParseSortOrder(raw string) (SortOrder, error) {
	return resolve("source_sort_order", raw, sortOrders)
}
