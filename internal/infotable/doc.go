// Package infotable defines the flat tables written by the typeinfo,
// propertyinfo and signalinfo modes and read back by merge.
//
// Tables are CSV with a header row. The header identifies the table kind,
// so merge inputs can be given in any order:
//
//	typeinfo:     gtype,namespace,name,ctype,parent_gtype,parent_name,kind,get_type,fundamental
//	propertyinfo: owner_gtype,namespace,property,type,ctype,flags
//	signalinfo:   owner_gtype,namespace,signal,return_type,param_types,flags
//
// Signal parameter types share one column, separated by "|".
//
// The package also carries the table of GLib fundamental types used to
// render "intern" get-type functions and to resolve property types that
// no GIR document declares.
package infotable
