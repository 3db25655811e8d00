package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// keySeparator 分隔 key 中的各段
const keySeparator = ":"

// EntryKey 拼出 prefix:namespace:method:args:v{n}。
func EntryKey(prefix, namespace, method string, version int64, args ...any) string {
	parts := []string{prefix, namespace, method}
	if len(args) > 0 {
		parts = append(parts, SerializeArgs(args...))
	}
	parts = append(parts, "v"+strconv.FormatInt(version, 10))
	return strings.Join(parts, keySeparator)
}

// VersionKey 是命名空间版本号所在的 key: prefix:namespace:version
func VersionKey(prefix, namespace string) string {
	return prefix + keySeparator + namespace + keySeparator + "version"
}

// Tag 是命名空间的标签名: prefix:namespace
func Tag(prefix, namespace string) string {
	return prefix + keySeparator + namespace
}

// SerializeArgs 把任意参数确定性地序列化。map 按 key 排序，结构体按字段顺序展开。
func SerializeArgs(args ...any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = serializeValue(arg)
	}
	return strings.Join(parts, ",")
}

func serializeValue(v any) string {
	if v == nil {
		return "nil"
	}
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339Nano)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return serializeValue(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil"
		}
		return serializeList("slice", rv)
	case reflect.Array:
		return serializeList("array", rv)
	case reflect.Map:
		if rv.IsNil() {
			return "map:nil"
		}
		return serializeMap(rv)
	case reflect.Struct:
		return serializeStruct(rv)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return fmt.Sprintf("%v", v)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "fallback:" + rv.Type().String()
	}
	return "json:" + string(data)
}

func serializeList(kind string, rv reflect.Value) string {
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts[i] = serializeValue(rv.Index(i).Interface())
	}
	return fmt.Sprintf("%s[%d]:{%s}", kind, rv.Len(), strings.Join(parts, ","))
}

func serializeMap(rv reflect.Value) string {
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, serializeValue(iter.Key().Interface())+"="+serializeValue(iter.Value().Interface()))
	}
	sort.Strings(pairs)
	return fmt.Sprintf("map[%d]:{%s}", len(pairs), strings.Join(pairs, ","))
}

func serializeStruct(rv reflect.Value) string {
	rt := rv.Type()
	parts := make([]string, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		parts = append(parts, field.Name+":"+serializeValue(rv.Field(i).Interface()))
	}
	return "struct:{" + strings.Join(parts, ",") + "}"
}
