package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agiangrant/skinny/aspect"
)

var errNoHint = errors.New("no hint")

type resolveFlags struct {
	typ       string
	primitive string
	placement string
	states    string
	animator  bool
}

func newResolveCmd(a *app) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve Class::Subcontrol",
		Short: "Show which hint the skin resolves for a subcontrol in a state",
		Example: `  skinctl resolve PushButton::Panel --states Hovered,Pressed
  skinctl resolve PushButton::Text --primitive FontRole
  skinctl resolve Slider::Panel --type metric --primitive Size --placement vertical`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd)
			if err != nil {
				return err
			}

			reg := e.Registry()
			class, q, err := buildQuery(reg, args[0], flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", keyStyle.Render("query:"), reg.Format(class, q))

			entry, ok := e.Skin().HintTable().Resolve(q).Get()
			if !ok {
				return fmt.Errorf("%w for %s", errNoHint, reg.Format(class, q))
			}
			fmt.Fprintf(out, "%s %s\n", keyStyle.Render("match:"), reg.Format(class, entry.Aspect))
			fmt.Fprintf(out, "%s %s\n", keyStyle.Render("value:"), renderValue(entry.Value))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.typ, "type", "color", "Hint type: flag, metric or color")
	f.StringVar(&flags.primitive, "primitive", "", "Primitive, e.g. TextColor, Padding, FontRole; implies the type")
	f.StringVar(&flags.placement, "placement", "", "Placement, e.g. Vertical, Top")
	f.StringVar(&flags.states, "states", "", "Comma separated active states, e.g. Hovered,Pressed")
	f.BoolVar(&flags.animator, "animator", false, "Resolve the animation hint instead of the value")
	return cmd
}

func buildQuery(reg *aspect.Registry, target string, flags *resolveFlags) (aspect.Class, aspect.Aspect, error) {
	className, subName, ok := strings.Cut(target, "::")
	if !ok {
		return aspect.NoClass, aspect.Aspect{}, fmt.Errorf("expected Class::Subcontrol, got %q", target)
	}
	class, ok := reg.ClassByName(className)
	if !ok {
		return aspect.NoClass, aspect.Aspect{}, fmt.Errorf("unknown class %q", className)
	}
	sub, ok := reg.LookupSubcontrol(class, subName)
	if !ok {
		return class, aspect.Aspect{}, fmt.Errorf("unknown subcontrol %q of %s", subName, className)
	}

	q := aspect.New(sub)

	if flags.primitive != "" {
		p, ok := aspect.ParsePrimitive(flags.primitive)
		if !ok {
			return class, q, fmt.Errorf("unknown primitive %q", flags.primitive)
		}
		q = q.Or(p)
	} else {
		t, ok := aspect.ParseType(flags.typ)
		if !ok {
			return class, q, fmt.Errorf("unknown type %q", flags.typ)
		}
		q = q.Or(t)
	}

	if flags.placement != "" {
		p, ok := aspect.ParsePlacement(flags.placement)
		if !ok {
			return class, q, fmt.Errorf("unknown placement %q", flags.placement)
		}
		q = q.Or(p)
	}

	for _, name := range strings.FieldsFunc(flags.states, func(r rune) bool { return r == ',' || r == '|' }) {
		s, ok := reg.StateByName(class, strings.TrimSpace(name))
		if !ok {
			return class, q, fmt.Errorf("unknown state %q of %s", name, className)
		}
		q = q.Or(s)
	}

	if flags.animator {
		q = q.AsAnimator()
	}
	return class, q, nil
}
