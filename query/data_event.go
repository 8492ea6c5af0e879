package query

import (
	"strconv"
	"strings"

	"github.com/Konsultn-Engineering/hdbpp/schema"
	"github.com/Konsultn-Engineering/hdbpp/traits"
)

func dataEventNameBuilder(stub string) func(traits.Traits) (string, error) {
	return func(t traits.Traits) (string, error) {
		if err := t.Check(); err != nil {
			return "", err
		}
		return stub +
			"_Write_" + strconv.Itoa(int(t.WriteType())) +
			"_Format_" + strconv.Itoa(int(t.FormatType())) +
			"_Type_" + strconv.Itoa(int(t.Type())), nil
	}
}

func (b *Builder) buildDataEvent(t traits.Traits) (string, error) {
	table, err := TableName(t)
	if err != nil {
		return "", err
	}
	kind, err := castKind(t.Type())
	if err != nil {
		return "", err
	}

	columns := []string{schema.DatColId, schema.DatColDataTime}
	params := 0
	next := func() int { params++; return params }

	// column order and placeholder numbering must advance together
	values := []string{b.dialect.Placeholder(next()), "TO_TIMESTAMP(" + b.dialect.Placeholder(next()) + ")"}

	if t.HasReadData() {
		columns = append(columns, schema.DatColValueR)
		values = append(values, b.dialect.CastPlaceholder(next(), kind, t.IsArray()))
	}
	if t.HasWriteData() {
		columns = append(columns, schema.DatColValueW)
		values = append(values, b.dialect.CastPlaceholder(next(), kind, t.IsArray()))
	}

	columns = append(columns, schema.DatColQuality)
	values = append(values, b.dialect.Placeholder(next()))

	return "INSERT INTO " + table + " (" + strings.Join(columns, ",") + ") VALUES (" + strings.Join(values, ",") + ")", nil
}

func (b *Builder) buildDataEventError(t traits.Traits) (string, error) {
	table, err := TableName(t)
	if err != nil {
		return "", err
	}

	params := 0
	next := func() int { params++; return params }

	return "INSERT INTO " + table + " (" +
		schema.DatColId + "," +
		schema.DatColDataTime + "," +
		schema.DatColQuality + "," +
		schema.DatColErrorDescId + ") VALUES (" +
		b.dialect.Placeholder(next()) +
		",TO_TIMESTAMP(" + b.dialect.Placeholder(next()) + ")" +
		"," + b.dialect.Placeholder(next()) +
		"," + b.dialect.Placeholder(next()) + ")", nil
}
