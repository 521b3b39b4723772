package postgres

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/Masterminds/squirrel"
)

// ExtractDBColumns returns the column names from T's "db" tags in field order.
// Embedded structs are walked recursively.
//
//	cols := ExtractDBColumns[client.Client]()
//	// ["id", "owner_id", "name"]
func ExtractDBColumns[T any]() []string {
	var zero T
	meta := metadataOf(reflect.TypeOf(zero))
	cols := make([]string, len(meta.fields))
	for i, f := range meta.fields {
		cols[i] = f.column
	}
	return cols
}

type fieldInfo struct {
	index  []int
	column string
}

type typeMetadata struct {
	fields []fieldInfo
}

// map[reflect.Type]*typeMetadata
var typeCache sync.Map

func metadataOf(t reflect.Type) *typeMetadata {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := typeCache.Load(t); ok {
		return cached.(*typeMetadata)
	}

	meta := &typeMetadata{}
	if t.Kind() == reflect.Struct {
		collectFields(t, nil, meta)
	}
	typeCache.Store(t, meta)
	return meta
}

func collectFields(t reflect.Type, parent []int, meta *typeMetadata) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int(nil), parent...), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(field.Type, index, meta)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		meta.fields = append(meta.fields, fieldInfo{index: index, column: tag})
	}
}

// StructToMap converts a struct to a column -> value map using "db" tags.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	meta := metadataOf(rv.Type())
	res := make(map[string]any, len(meta.fields))
	for _, f := range meta.fields {
		res[f.column] = rv.FieldByIndex(f.index).Interface()
	}
	return res
}

// InsertStructs inserts items into table in one multi-row INSERT, taking the
// columns from T's "db" tags.
func InsertStructs[T any](ctx context.Context, q Querier, table string, items []T) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	cols := ExtractDBColumns[T]()
	ins := squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Insert(table).
		Columns(cols...)
	for _, item := range items {
		row := StructToMap(item)
		values := make([]any, len(cols))
		for i, col := range cols {
			values[i] = row[col]
		}
		ins = ins.Values(values...)
	}

	sql, args, err := ins.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert %s: %w", table, err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}
