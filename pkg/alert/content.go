package alert

// InputField is a single-line text input added with AddInput or
// AddSecureInput. The host writes typed text back with SetValue.
type InputField struct {
	index       int
	placeholder string
	secure      bool
	value       string
}

func (f *InputField) Index() int { return f.index }
func (f *InputField) Placeholder() string { return f.placeholder }
func (f *InputField) Secure() bool { return f.secure }
func (f *InputField) Value() string { return f.value }
func (f *InputField) SetValue(v string) { f.value = v }

// TextBlock is a fixed-height multi-line text area.
type TextBlock struct {
	index int
	text  string
}

func (b *TextBlock) Index() int { return b.index }
func (b *TextBlock) Text() string { return b.text }
func (b *TextBlock) SetText(s string) { b.text = s }

// CustomContent is a caller-supplied block that replaces the subtitle area.
// Only its size matters to layout.
type CustomContent interface {
	Size() Size
}

// Content is everything laid out inside the alert box. Slice order is
// display order.
type Content struct {
	Title      string
	Subtitle   string
	Inputs     []*InputField
	TextBlocks []*TextBlock
	Custom     CustomContent
	Buttons    []*Button
}

// InputValues returns the current value of every input in order.
func (c Content) InputValues() []string {
	out := make([]string, len(c.Inputs))
	for i, f := range c.Inputs {
		out[i] = f.value
	}
	return out
}
