package model

// Property names reported by Common, Item and Group
const (
	PropertyID          = "ID"
	PropertyTitle       = "Title"
	PropertySubtitle    = "Subtitle"
	PropertyDescription = "Description"
	PropertyImage       = "Image"
	PropertyContent     = "Content"
	PropertyGroupID     = "GroupID"
)

// Bindable is embedded by model types that report property changes to a
// single consumer, usually the view currently showing them.
type Bindable struct {
	onChange func(property string)
}

// SetChangeCallback sets the callback invoked after a property changes
func (b *Bindable) SetChangeCallback(callback func(property string)) {
	b.onChange = callback
}

// NotifyPropertyChanged reports property to the callback, if any
func (b *Bindable) NotifyPropertyChanged(property string) {
	if b.onChange != nil {
		b.onChange(property)
	}
}

// SetProperty stores value into field and reports property, but only when
// the value differs from the current one. It returns whether it changed.
func SetProperty[T comparable](b *Bindable, field *T, value T, property string) bool {
	if *field == value {
		return false
	}
	*field = value
	b.NotifyPropertyChanged(property)
	return true
}
