package contentfront

// Assignment maps experiment names to the variant the caller was bucketed
// into. Bucketing happens outside this engine; the assignment is supplied
// per request.
type Assignment map[string]string

// OverrideKind is the domain type for experiment substitution forms.
type OverrideKind string

// Override substitution forms (typed).
const (
	// OverrideField replaces one logical view field with a fixed value.
	OverrideField OverrideKind = "field"

	// OverrideTemplate swaps the template key used to render the page.
	OverrideTemplate OverrideKind = "template"

	// OverrideHandler replaces the page's downstream action, routing a
	// follow-on choice submission to a configured redirect target.
	OverrideHandler OverrideKind = "handler"
)

// Override is one registered experiment substitution. It applies only when
// its path scope matches the request's base path and the caller-supplied
// assignment maps its experiment to its variant.
type Override struct {
	Experiment string `yaml:"experiment"`
	Variant    string `yaml:"variant"`

	// PathScope is the base path the override is scoped to. With Prefix
	// set, any base path under the scope matches; otherwise the match is
	// exact. An empty scope is global.
	PathScope string `yaml:"path_scope"`
	Prefix    bool   `yaml:"prefix"`

	Kind OverrideKind `yaml:"kind"`

	// Field substitution.
	Field string `yaml:"field,omitempty"`
	Value string `yaml:"value,omitempty"`

	// Template substitution.
	TemplateKey string `yaml:"template_key,omitempty"`

	// Handler substitution.
	HandlerKey    string            `yaml:"handler_key,omitempty"`
	Choices       map[string]string `yaml:"choices,omitempty"`
	ErrorRedirect string            `yaml:"error_redirect,omitempty"`
}

// Matches reports whether the override applies to the given base path and
// assignment.
func (o Override) Matches(basePath string, assignment Assignment) bool {
	if assignment[o.Experiment] != o.Variant {
		return false
	}
	return o.matchesPath(basePath)
}

func (o Override) matchesPath(basePath string) bool {
	if o.PathScope == "" {
		return true
	}
	if basePath == o.PathScope {
		return true
	}
	return o.Prefix && hasPathPrefix(basePath, o.PathScope+"/")
}

// Dispatcher applies experiment overrides to presented views. The override
// table is built once at startup and read-only afterwards; Apply is a pure
// function of (assignment, view) with no hidden randomness, so the same
// assignment always produces the same output.
type Dispatcher struct {
	overrides []Override
}

// NewDispatcher builds a dispatcher over a fixed override table.
func NewDispatcher(overrides []Override) *Dispatcher {
	return &Dispatcher{overrides: overrides}
}

// Apply returns the view with every matching override applied, in
// registration order. When nothing matches, the base view passes through
// unchanged.
func (d *Dispatcher) Apply(assignment Assignment, view *PageView) *PageView {
	if d == nil || len(d.overrides) == 0 || view == nil {
		return view
	}
	basePath := ""
	if view.Presenter != nil {
		basePath = view.Presenter.Document().BasePath
	}
	out := *view
	for _, o := range d.overrides {
		if !o.Matches(basePath, assignment) {
			continue
		}
		switch o.Kind {
		case OverrideField:
			substituteField(&out, o.Field, o.Value)
		case OverrideTemplate:
			out.TemplateKey = o.TemplateKey
		case OverrideHandler:
			out.HandlerKey = o.HandlerKey
		}
	}
	return &out
}

// HandlerOverride returns the matching handler-form override for a base
// path and assignment, if any.
func (d *Dispatcher) HandlerOverride(basePath string, assignment Assignment) (Override, bool) {
	if d == nil {
		return Override{}, false
	}
	for _, o := range d.overrides {
		if o.Kind == OverrideHandler && o.Matches(basePath, assignment) {
			return o, true
		}
	}
	return Override{}, false
}

func substituteField(view *PageView, field, value string) {
	switch field {
	case "title":
		view.Title = value
	case "description":
		view.Description = value
	case "body":
		view.Body = value
	}
}
