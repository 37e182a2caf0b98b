package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/marcus/alertkit/pkg/alert"
)

// categoryValue is a pflag.Value for alert categories.
type categoryValue struct {
	c   alert.Category
	set bool
}

func (v *categoryValue) String() string { return v.c.String() }

func (v *categoryValue) Set(s string) error {
	c, err := alert.ParseCategory(s)
	if err != nil {
		return err
	}
	v.c, v.set = c, true
	return nil
}

func (v *categoryValue) Type() string { return "category" }

// animationValue is a pflag.Value for entrance animations.
type animationValue struct {
	s   alert.AnimationStyle
	set bool
}

func (v *animationValue) String() string { return v.s.String() }

func (v *animationValue) Set(s string) error {
	st, err := alert.ParseAnimationStyle(s)
	if err != nil {
		return err
	}
	v.s, v.set = st, true
	return nil
}

func (v *animationValue) Type() string { return "animation" }

// buttonFlag is one --button or --duration-button, in command-line order.
type buttonFlag struct {
	label    string
	duration bool
}

// buttonsValue appends to a list shared by --button and --duration-button
// so interleaved flags keep their order.
type buttonsValue struct {
	list     *[]buttonFlag
	duration bool
}

func (v *buttonsValue) String() string {
	var labels []string
	for _, b := range *v.list {
		if b.duration == v.duration {
			labels = append(labels, b.label)
		}
	}
	return "[" + strings.Join(labels, ",") + "]"
}

func (v *buttonsValue) Set(s string) error {
	*v.list = append(*v.list, buttonFlag{label: s, duration: v.duration})
	return nil
}

func (v *buttonsValue) Type() string { return "label" }

// secondsValue is an int flag that remembers whether it was given.
type secondsValue struct {
	n   int
	set bool
}

func (v *secondsValue) String() string { return strconv.Itoa(v.n) }

func (v *secondsValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	v.n, v.set = n, true
	return nil
}

func (v *secondsValue) Type() string { return "seconds" }

// contentFlags describes an alert from the command line. show and layout
// share it.
type contentFlags struct {
	category  categoryValue
	animation animationValue

	title        string
	subtitle     string
	buttons      []buttonFlag
	inputs       []string
	secureInputs []string
	textBlocks   []string
	duration     secondsValue
	noIcon       bool
	markdown     bool
	themeFile    string
}

func addContentFlags(fs *pflag.FlagSet, f *contentFlags) {
	fs.Var(&f.category, "category", "alert category ("+categoryNames()+")")
	fs.Var(&f.animation, "animation", "entrance animation ("+animationNames()+")")
	fs.StringVarP(&f.title, "title", "t", "", "alert title")
	fs.StringVarP(&f.subtitle, "subtitle", "s", "", "alert body text")
	fs.VarP(&buttonsValue{list: &f.buttons}, "button", "b", "add a button (repeatable)")
	fs.Var(&buttonsValue{list: &f.buttons, duration: true}, "duration-button", "add a button that shows the countdown (repeatable)")
	fs.StringArrayVar(&f.inputs, "input", nil, "add a text input with this placeholder (repeatable)")
	fs.StringArrayVar(&f.secureInputs, "secure-input", nil, "add a masked input with this placeholder (repeatable)")
	fs.StringArrayVar(&f.textBlocks, "text-block", nil, "add a multi-line text block (repeatable)")
	fs.VarP(&f.duration, "duration", "d", "auto-dismiss after this many seconds (0 disables)")
	fs.BoolVar(&f.noIcon, "no-icon", false, "hide the circular icon")
	fs.BoolVar(&f.markdown, "markdown", false, "render the subtitle as markdown")
	fs.StringVar(&f.themeFile, "theme", "", "TOML theme file")
}

func categoryNames() string {
	var names []string
	for _, c := range alert.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, "|")
}

func animationNames() string {
	var names []string
	for _, s := range alert.AnimationStyles() {
		names = append(names, s.String())
	}
	return strings.Join(names, "|")
}
