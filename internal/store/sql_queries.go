package store

import (
	"strings"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with PostgreSQL positional placeholders ($1, $2...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper escapes LIKE metacharacters so user input is matched literally.
// Backslash is PostgreSQL's default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into a case-insensitive substring pattern.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildListPredicate combines every filter present in query. Relation and
// column names come from the validated catalog and are safe to interpolate.
func buildListPredicate(resource catalog.Resource, query models.ListQuery) sq.And {
	pred := sq.And{}

	if query.DateFrom != nil {
		pred = append(pred, sq.GtOrEq{resource.TemporalColumn: *query.DateFrom})
	}
	if query.DateTo != nil {
		pred = append(pred, sq.LtOrEq{resource.TemporalColumn: *query.DateTo})
	}
	if query.Location != nil && resource.HasFilter("location") {
		pred = append(pred, sq.ILike{"location": containsPattern(*query.Location)})
	}
	if query.Source != nil && resource.HasFilter("source") {
		pred = append(pred, sq.ILike{"source": containsPattern(*query.Source)})
	}

	return pred
}

func buildCountQuery(resource catalog.Resource, pred sq.And) (string, []any, error) {
	builder := psql.Select("count(*)").From(resource.Relation)
	if len(pred) > 0 {
		builder = builder.Where(pred)
	}
	return builder.ToSql()
}

// buildPageQuery selects one page of rows ordered newest first. The primary
// key breaks ties between rows sharing a timestamp so pages never overlap.
func buildPageQuery(resource catalog.Resource, pred sq.And, query models.ListQuery) (string, []any, error) {
	builder := psql.Select(resource.Projection...).
		From(resource.Relation).
		OrderBy(resource.TemporalColumn+" DESC", resource.PrimaryKey+" DESC").
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset))
	if len(pred) > 0 {
		builder = builder.Where(pred)
	}
	return builder.ToSql()
}

func buildGetByIDQuery(resource catalog.Resource, id int64) (string, []any, error) {
	return psql.Select(resource.Projection...).
		From(resource.Relation).
		Where(sq.Eq{resource.PrimaryKey: id}).
		Limit(1).
		ToSql()
}

func buildSelectViewQuery(view catalog.ViewDescriptor) (string, []any, error) {
	return psql.Select(view.Projection...).
		From(view.SourceRelation).
		OrderBy(view.OrderBy...).
		ToSql()
}
