package catalog

import (
	"fmt"
	"regexp"
	"slices"
)

// identifierPattern restricts relation and column names to plain lowercase
// SQL identifiers, so they can be interpolated into queries verbatim.
var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Resource describes a paginated measurement relation.
type Resource struct {
	// Name is the URL segment, e.g. "air-quality".
	Name string
	// Title is the human-readable singular name used in messages.
	Title string
	// Relation is the table or view the rows are read from.
	Relation string
	// PrimaryKey is the integer identifier column.
	PrimaryKey string
	// TemporalColumn is the column rows are ordered by, newest first.
	TemporalColumn string
	// Projection is the ordered list of returned columns.
	Projection []string
	// Filters lists the text columns that accept a substring filter.
	// "location" and "source" are the ones the API knows about.
	Filters []string
}

// HasFilter reports whether column may be filtered on.
func (r Resource) HasFilter(column string) bool {
	return slices.Contains(r.Filters, column)
}

// ViewDescriptor maps a route to a read-only relation and its projection.
type ViewDescriptor struct {
	Route          string
	SourceRelation string
	Projection     []string
	// OrderBy lists the projected columns rows are sorted by, ascending.
	OrderBy      []string
	RequiresAuth bool
}

// Catalog is an immutable registry of resources and views.
type Catalog struct {
	resources     map[string]Resource
	resourceOrder []string

	views     map[string]ViewDescriptor
	viewOrder []string
}

// New validates the declarations and builds a Catalog. Declaration order is
// preserved by [Catalog.Resources] and [Catalog.Views].
func New(resources []Resource, views []ViewDescriptor) (*Catalog, error) {
	c := &Catalog{
		resources:     make(map[string]Resource, len(resources)),
		resourceOrder: make([]string, 0, len(resources)),
		views:         make(map[string]ViewDescriptor, len(views)),
		viewOrder:     make([]string, 0, len(views)),
	}

	for _, r := range resources {
		if err := validateResource(r); err != nil {
			return nil, err
		}
		if _, ok := c.resources[r.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate resource %q", ErrInvalidDeclaration, r.Name)
		}
		c.resources[r.Name] = cloneResource(r)
		c.resourceOrder = append(c.resourceOrder, r.Name)
	}

	for _, v := range views {
		if err := validateView(v); err != nil {
			return nil, err
		}
		if _, ok := c.views[v.Route]; ok {
			return nil, fmt.Errorf("%w: duplicate view route %q", ErrInvalidDeclaration, v.Route)
		}
		v.Projection = slices.Clone(v.Projection)
		v.OrderBy = slices.Clone(v.OrderBy)
		c.views[v.Route] = v
		c.viewOrder = append(c.viewOrder, v.Route)
	}

	return c, nil
}

// MustNew is like [New] but panics on an invalid declaration. It is meant for
// static declarations compiled into the binary.
func MustNew(resources []Resource, views []ViewDescriptor) *Catalog {
	c, err := New(resources, views)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve returns the view registered under route.
func (c *Catalog) Resolve(route string) (ViewDescriptor, error) {
	v, ok := c.views[route]
	if !ok {
		return ViewDescriptor{}, fmt.Errorf("%w: %q", ErrViewNotFound, route)
	}
	return v, nil
}

// Views returns all views in declaration order.
func (c *Catalog) Views() []ViewDescriptor {
	out := make([]ViewDescriptor, 0, len(c.viewOrder))
	for _, route := range c.viewOrder {
		out = append(out, c.views[route])
	}
	return out
}

// Resource returns the resource registered under name.
func (c *Catalog) Resource(name string) (Resource, error) {
	r, ok := c.resources[name]
	if !ok {
		return Resource{}, fmt.Errorf("%w: %q", ErrResourceNotFound, name)
	}
	return r, nil
}

// Resources returns all resources in declaration order.
func (c *Catalog) Resources() []Resource {
	out := make([]Resource, 0, len(c.resourceOrder))
	for _, name := range c.resourceOrder {
		out = append(out, c.resources[name])
	}
	return out
}

func validateResource(r Resource) error {
	if r.Name == "" {
		return fmt.Errorf("%w: resource without name", ErrInvalidDeclaration)
	}
	for _, ident := range []string{r.Relation, r.PrimaryKey, r.TemporalColumn} {
		if !identifierPattern.MatchString(ident) {
			return fmt.Errorf("%w: resource %q: bad identifier %q", ErrInvalidDeclaration, r.Name, ident)
		}
	}
	if err := validateProjection(r.Name, r.Projection); err != nil {
		return err
	}
	if !slices.Contains(r.Projection, r.PrimaryKey) || !slices.Contains(r.Projection, r.TemporalColumn) {
		return fmt.Errorf("%w: resource %q: projection must include primary key and temporal column", ErrInvalidDeclaration, r.Name)
	}
	for _, f := range r.Filters {
		if !slices.Contains(r.Projection, f) {
			return fmt.Errorf("%w: resource %q: filter %q is not projected", ErrInvalidDeclaration, r.Name, f)
		}
	}
	return nil
}

func validateView(v ViewDescriptor) error {
	if v.Route == "" {
		return fmt.Errorf("%w: view without route", ErrInvalidDeclaration)
	}
	if !identifierPattern.MatchString(v.SourceRelation) {
		return fmt.Errorf("%w: view %q: bad relation %q", ErrInvalidDeclaration, v.Route, v.SourceRelation)
	}
	if err := validateProjection(v.Route, v.Projection); err != nil {
		return err
	}
	for _, col := range v.OrderBy {
		if !slices.Contains(v.Projection, col) {
			return fmt.Errorf("%w: view %q: order column %q is not projected", ErrInvalidDeclaration, v.Route, col)
		}
	}
	return nil
}

func validateProjection(owner string, projection []string) error {
	if len(projection) == 0 {
		return fmt.Errorf("%w: %q: empty projection", ErrInvalidDeclaration, owner)
	}
	seen := make(map[string]struct{}, len(projection))
	for _, col := range projection {
		if !identifierPattern.MatchString(col) {
			return fmt.Errorf("%w: %q: bad column %q", ErrInvalidDeclaration, owner, col)
		}
		if _, ok := seen[col]; ok {
			return fmt.Errorf("%w: %q: duplicate column %q", ErrInvalidDeclaration, owner, col)
		}
		seen[col] = struct{}{}
	}
	return nil
}

func cloneResource(r Resource) Resource {
	r.Projection = slices.Clone(r.Projection)
	r.Filters = slices.Clone(r.Filters)
	return r
}
