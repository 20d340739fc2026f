package model

// Decorator enriches a form model after it has been built from a schema.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// WithTitle returns a decorator that overrides the form header when title is
// not empty.
func WithTitle(title string) Decorator {
	return DecoratorFunc(func(form *FormModel) error {
		if title != "" {
			form.Title = title
		}
		return nil
	})
}

// Apply runs each decorator in order and stops at the first error.
func Apply(form *FormModel, decorators ...Decorator) error {
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return err
		}
	}
	return nil
}
