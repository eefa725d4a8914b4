package infotable

import "strings"

// Fundamental is a type registered by GLib itself rather than by a GIR document.
type Fundamental struct {
	GType   string
	CType   string
	GetType string
}

var fundamentals = []Fundamental{
	{"invalid", "invalid", "G_TYPE_INVALID"},
	{"none", "void", "G_TYPE_NONE"},
	{"GTypeInterface", "GTypeInterface", "G_TYPE_INTERFACE"},
	{"gboolean", "gboolean", "G_TYPE_BOOLEAN"},
	{"gsize", "gsize", "G_TYPE_ULONG"},
	{"gssize", "gssize", "G_TYPE_LONG"},
	{"gint8", "gint8", "G_TYPE_CHAR"},
	{"guint8", "guint8", "G_TYPE_UCHAR"},
	{"gint16", "gint16", "G_TYPE_INT"},
	{"guint16", "guint16", "G_TYPE_UINT"},
	{"gint32", "gint32", "G_TYPE_INT"},
	{"guint32", "guint32", "G_TYPE_UINT"},
	{"gint64", "gint64", "G_TYPE_INT64"},
	{"guint64", "guint64", "G_TYPE_UINT64"},
	{"gpointer", "gpointer", "G_TYPE_POINTER"},
	{"gconstpointer", "gconstpointer", "G_TYPE_POINTER"},
	{"gchar", "gchar", "G_TYPE_CHAR"},
	{"guchar", "guchar", "G_TYPE_UCHAR"},
	{"gint", "gint", "G_TYPE_INT"},
	{"guint", "guint", "G_TYPE_UINT"},
	{"gshort", "gshort", "G_TYPE_INT"},
	{"gushort", "gushort", "G_TYPE_UINT"},
	{"glong", "glong", "G_TYPE_LONG"},
	{"gulong", "gulong", "G_TYPE_ULONG"},
	{"gfloat", "gfloat", "G_TYPE_FLOAT"},
	{"gdouble", "gdouble", "G_TYPE_DOUBLE"},
	{"goffset", "goffset", "G_TYPE_INT64"},
	{"gintptr", "gintptr", "G_TYPE_POINTER"},
	{"guintptr", "guintptr", "G_TYPE_POINTER"},
	{"GObject", "GObject", "G_TYPE_OBJECT"},
	{"GVariant", "GVariant", "G_TYPE_VARIANT"},
	{"GChecksum", "GChecksum", "G_TYPE_CHECKSUM"},
	{"GEnum", "gint", "G_TYPE_ENUM"},
	{"GFlags", "gint", "G_TYPE_FLAGS"},
	{"long long", "long long", "G_TYPE_INT64"},
	{"unsigned long long", "unsigned long long", "G_TYPE_UINT64"},
	{"long double", "long double", "G_TYPE_DOUBLE"},
	{"gunichar", "gunichar", "G_TYPE_INT"},
	{"gunichar2", "gunichar2", "G_TYPE_INT"},
	{"GType", "GType", "G_TYPE_GTYPE"},
	{"utf8", "gchar*", "G_TYPE_STRING"},
	{"filename", "gchar*", "G_TYPE_STRING"},
	{"GBoxed", "GBoxed", "G_TYPE_BOXED"},
	{"GHashTable", "GHashTable", "G_TYPE_HASH_TABLE"},
	{"GDate", "GDate", "G_TYPE_DATE"},
	{"GString", "GString", "G_TYPE_GSTRING"},
	{"GStrv", "gchar**", "G_TYPE_STRV"},
	{"GRegex", "GRegex", "G_TYPE_REGEX"},
	{"GMatchInfo", "GMatchInfo", "G_TYPE_MATCH_INFO"},
	{"GArray", "GArray", "G_TYPE_ARRAY"},
	{"GByteArray", "GByteArray", "G_TYPE_BYTE_ARRAY"},
	{"GPtrArray", "GPtrArray", "G_TYPE_PTR_ARRAY"},
	{"GBytes", "GBytes", "G_TYPE_BYTES"},
	{"GVariantType", "GVariantType", "G_TYPE_VARIANT_TYPE"},
	{"GError", "GError", "G_TYPE_ERROR"},
	{"GDateTime", "GDateTime", "G_TYPE_DATE_TIME"},
	{"GTimeZone", "GTimeZone", "G_TYPE_TIME_ZONE"},
	{"GIOChannel", "GIOChannel", "G_TYPE_IO_CHANNEL"},
	{"GIOCondition", "GIOCondition", "G_TYPE_IO_CONDITION"},
	{"GVariantBuilder", "GVariantBuilder", "G_TYPE_VARIANT_BUILDER"},
	{"GVariantDict", "GVariantDict", "G_TYPE_VARIANT_DICT"},
	{"GKeyFile", "GKeyFile", "G_TYPE_KEY_FILE"},
	{"GMainContext", "GMainContext", "G_TYPE_MAIN_CONTEXT"},
	{"GMainLoop", "GMainLoop", "G_TYPE_MAIN_LOOP"},
	{"GMappedFile", "GMappedFile", "G_TYPE_MAPPED_FILE"},
	{"GMarkupParseContext", "GMarkupParseContext", "G_TYPE_MARKUP_PARSE_CONTEXT"},
	{"GSource", "GSource", "G_TYPE_SOURCE"},
	{"GPollFD", "GPollFD", "G_TYPE_POLLFD"},
	{"GThread", "GThread", "G_TYPE_THREAD"},
	{"GOptionGroup", "GOptionGroup", "G_TYPE_OPTION_GROUP"},
	{"GParam", "GParamSpec", "G_TYPE_PARAM"},
	{"GParamChar", "GParamChar", "G_TYPE_PARAM_CHAR"},
	{"GParamUChar", "GParamUChar", "G_TYPE_PARAM_UCHAR"},
	{"GParamBoolean", "GParamBoolean", "G_TYPE_PARAM_BOOLEAN"},
	{"GParamInt", "GParamInt", "G_TYPE_PARAM_INT"},
	{"GParamUInt", "GParamUInt", "G_TYPE_PARAM_UINT"},
	{"GParamLong", "GParamLong", "G_TYPE_PARAM_LONG"},
	{"GParamULong", "GParamULong", "G_TYPE_PARAM_ULONG"},
	{"GParamInt64", "GParamInt64", "G_TYPE_PARAM_INT64"},
	{"GParamUInt64", "GParamUInt64", "G_TYPE_PARAM_UINT64"},
	{"GParamUnichar", "GParamUnichar", "G_TYPE_PARAM_UNICHAR"},
	{"GParamEnum", "GParamEnum", "G_TYPE_PARAM_ENUM"},
	{"GParamFlags", "GParamFlags", "G_TYPE_PARAM_FLAGS"},
	{"GParamFloat", "GParamFloat", "G_TYPE_PARAM_FLOAT"},
	{"GParamDouble", "GParamDouble", "G_TYPE_PARAM_DOUBLE"},
	{"GParamString", "GParamString", "G_TYPE_PARAM_STRING"},
	{"GParamParam", "GParamParam", "G_TYPE_PARAM_PARAM"},
	{"GParamBoxed", "GParamBoxed", "G_TYPE_PARAM_BOXED"},
	{"GParamPointer", "GParamPointer", "G_TYPE_PARAM_POINTER"},
	{"GParamValueArray", "GParamValueArray", "G_TYPE_PARAM_VALUE_ARRAY"},
	{"GParamObject", "GParamObject", "G_TYPE_PARAM_OBJECT"},
	{"GParamOverride", "GParamOverride", "G_TYPE_PARAM_OVERRIDE"},
	{"GParamGType", "GParamGType", "G_TYPE_PARAM_GTYPE"},
	{"GParamVariant", "GParamVariant", "G_TYPE_PARAM_VARIANT"},
}

var (
	fundamentalsByGType = make(map[string]Fundamental, len(fundamentals))
	fundamentalsByCType = make(map[string]Fundamental, len(fundamentals))
)

func init() {
	// first entry wins: gint is G_TYPE_INT, not the enum or flags storage type
	for _, f := range fundamentals {
		if _, ok := fundamentalsByGType[f.GType]; !ok {
			fundamentalsByGType[f.GType] = f
		}
		if _, ok := fundamentalsByCType[f.CType]; !ok {
			fundamentalsByCType[f.CType] = f
		}
	}
}

// FundamentalByGType looks up a built-in type by GType name.
func FundamentalByGType(name string) (Fundamental, bool) {
	f, ok := fundamentalsByGType[name]
	return f, ok
}

// FundamentalByCType looks up a built-in type by C type.
func FundamentalByCType(ctype string) (Fundamental, bool) {
	f, ok := fundamentalsByCType[ctype]
	return f, ok
}

// RenderGetType renders the get-type column of a type row.
// "intern" is resolved through the built-in table by GType name, falling
// back to fallback; a G_TYPE_* macro is kept; a function name gets "()".
func RenderGetType(getType, gtypeName, fallback string) string {
	switch {
	case getType == "":
		return ""
	case getType == "intern":
		if f, ok := FundamentalByGType(gtypeName); ok {
			return f.GetType
		}
		return fallback
	case strings.HasPrefix(getType, "G_TYPE_"):
		return getType
	}
	return getType + "()"
}
