package usual

import (
	"github.com/arthur-debert/desks/pkg/commands/set"
	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/paths"
	"github.com/arthur-debert/desks/pkg/status"
	"github.com/arthur-debert/desks/pkg/types"
)

// UsualOptions defines the options for the shortcut commands.
type UsualOptions struct {
	Env  types.Env
	Name string
	// Target is only used by Add
	Target        string
	ParkingSuffix string
	DryRun        bool
}

func notFound(name string, b types.Binding) error {
	return errors.Newf(errors.ErrShortcutNotFound, "no shortcut named %q", name).
		WithDetail("name", name).
		WithDetail("available", b.ShortcutNames())
}

// SwitchTo points the desktop at the directory saved under a shortcut name
func SwitchTo(opts UsualOptions) (*workflow.Result, error) {
	if err := workflow.CheckEnv(opts.Env); err != nil {
		return nil, err
	}
	binding, err := opts.Env.Store.Load()
	if err != nil {
		return nil, err
	}
	target, ok := binding.Shortcuts[opts.Name]
	if !ok {
		return nil, notFound(opts.Name, binding)
	}

	return set.Set(set.SetOptions{
		Env:           opts.Env,
		Target:        target,
		ParkingSuffix: opts.ParkingSuffix,
		DryRun:        opts.DryRun,
		Command:       "usual",
	})
}

// Remove deletes a shortcut. The directory it names is not touched.
func Remove(opts UsualOptions) (*workflow.Result, error) {
	log := logging.GetLogger("commands.usual")

	if err := workflow.CheckEnv(opts.Env); err != nil {
		return nil, err
	}

	if opts.DryRun {
		binding, err := opts.Env.Store.Load()
		if err != nil {
			return nil, err
		}
		if _, ok := binding.Shortcuts[opts.Name]; !ok {
			return nil, notFound(opts.Name, binding)
		}
		next := binding.Clone()
		delete(next.Shortcuts, opts.Name)
		return &workflow.Result{Command: "usual-remove", DryRun: true, Binding: next}, nil
	}

	var removed string
	saved, err := opts.Env.Store.Update(func(b *types.Binding) error {
		path, ok := b.Shortcuts[opts.Name]
		if !ok {
			return notFound(opts.Name, *b)
		}
		removed = path
		delete(b.Shortcuts, opts.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("name", opts.Name).Str("path", removed).Msg("Shortcut removed")
	return &workflow.Result{Command: "usual-remove", Binding: saved}, nil
}

// Add registers a shortcut without switching to it
func Add(opts UsualOptions) (*workflow.Result, error) {
	log := logging.GetLogger("commands.usual")

	if err := workflow.CheckEnv(opts.Env); err != nil {
		return nil, err
	}
	if err := workflow.ValidateShortcutName(opts.Name); err != nil {
		return nil, err
	}
	target, err := paths.NormalizePath(opts.Target)
	if err != nil {
		return nil, err
	}
	isDir, err := status.ResolvesToDir(opts.Env.FS, target)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", target).
			WithDetail("target", target)
	}

	add := func(b *types.Binding) error {
		if existing, ok := b.Shortcuts[opts.Name]; ok {
			return errors.Newf(errors.ErrShortcutExists,
				"shortcut %q already exists (%s -> %s)", opts.Name, opts.Name, existing).
				WithDetail("name", opts.Name)
		}
		if b.Shortcuts == nil {
			b.Shortcuts = make(map[string]string)
		}
		b.Shortcuts[opts.Name] = target
		return nil
	}

	if opts.DryRun {
		binding, err := opts.Env.Store.Load()
		if err != nil {
			return nil, err
		}
		next := binding.Clone()
		if err := add(&next); err != nil {
			return nil, err
		}
		return &workflow.Result{Command: "usual-add", DryRun: true, Binding: next}, nil
	}

	saved, err := opts.Env.Store.Update(add)
	if err != nil {
		return nil, err
	}
	log.Info().Str("name", opts.Name).Str("path", target).Msg("Shortcut added")
	return &workflow.Result{Command: "usual-add", Binding: saved}, nil
}
