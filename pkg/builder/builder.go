package builder

type Builder[T any] interface {
	Build() (T, error)
	AddModifier(...Modifier[T]) Builder[T]
}

type Modifier[T any] interface {
	Enabled() bool
	Modify(*T) error
}

type GenericBuilder[T any] struct {
	data      *T
	modifiers []Modifier[T]
}

var _ Builder[any] = (*GenericBuilder[any])(nil)

func (b GenericBuilder[T]) Build() (T, error) {
	if b.data == nil {
		var data T
		b.data = &data
	}

	for _, modifier := range b.modifiers {
		if !modifier.Enabled() {
			continue
		}

		if err := modifier.Modify(b.data); err != nil {
			var empty T

			return empty, err
		}
	}

	return *b.data, nil
}

func (b *GenericBuilder[T]) AddModifier(modifiers ...Modifier[T]) Builder[T] {
	b.modifiers = append(b.modifiers, modifiers...)

	return b
}

func NewBuilder[T any](data T) GenericBuilder[T] {
	return GenericBuilder[T]{
		data:      &data,
		modifiers: []Modifier[T]{},
	}
}
