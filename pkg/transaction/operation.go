package transaction

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/status"
	"github.com/arthur-debert/desks/pkg/types"
)

// Kind identifies an Operation variant
type Kind string

const (
	// KindRenameDir moves From to To
	KindRenameDir Kind = "rename_dir"
	// KindCreateLink creates a symlink at Link pointing to Target
	KindCreateLink Kind = "create_link"
	// KindDeleteLink removes the symlink at Link; it fails if Link does not
	// point to Target
	KindDeleteLink Kind = "delete_link"
	// KindRestoreDir undoes a RenameDir{From, To}. It is only produced by
	// Inverse and inspects both paths before touching anything.
	KindRestoreDir Kind = "restore_dir"
)

// Operation is a single planned filesystem mutation.
//
// RenameDir and RestoreDir use From and To; the link kinds use Target and
// Link. Label is for diagnostics only.
type Operation struct {
	Kind   Kind   `json:"kind" yaml:"kind" toml:"kind"`
	From   string `json:"from,omitempty" yaml:"from,omitempty" toml:"from,omitempty"`
	To     string `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Link   string `json:"link,omitempty" yaml:"link,omitempty" toml:"link,omitempty"`
	Label  string `json:"label" yaml:"label" toml:"label"`

	// lenient is set on inverses: a DeleteLink that finds no link succeeds
	lenient bool
}

// RenameDir returns an operation that renames from to to.
func RenameDir(from, to string) Operation {
	return Operation{
		Kind:  KindRenameDir,
		From:  from,
		To:    to,
		Label: fmt.Sprintf("rename %s -> %s", from, to),
	}
}

// CreateLink returns an operation that creates a symlink at link pointing to
// target.
func CreateLink(target, link string) Operation {
	return Operation{
		Kind:   KindCreateLink,
		Target: target,
		Link:   link,
		Label:  fmt.Sprintf("link %s -> %s", link, target),
	}
}

// DeleteLink returns an operation that removes the symlink at link, which is
// known to point at target.
func DeleteLink(target, link string) Operation {
	return Operation{
		Kind:   KindDeleteLink,
		Target: target,
		Link:   link,
		Label:  fmt.Sprintf("unlink %s (-> %s)", link, target),
	}
}

// WithLabel returns a copy of the operation with a custom label
func (o Operation) WithLabel(label string) Operation {
	o.Label = label
	return o
}

func (o Operation) String() string {
	if o.Label != "" {
		return o.Label
	}
	return string(o.Kind)
}

// Inverse returns the operation that undoes o.
func (o Operation) Inverse() Operation {
	switch o.Kind {
	case KindRenameDir:
		return Operation{
			Kind:  KindRestoreDir,
			From:  o.From,
			To:    o.To,
			Label: fmt.Sprintf("restore %s <- %s", o.From, o.To),
		}
	case KindRestoreDir:
		return RenameDir(o.From, o.To)
	case KindCreateLink:
		inv := DeleteLink(o.Target, o.Link)
		inv.lenient = true
		return inv
	case KindDeleteLink:
		return CreateLink(o.Target, o.Link)
	}
	panic(fmt.Sprintf("transaction: unknown operation kind %q", o.Kind))
}

// execute performs the forward action of o
func (o Operation) execute(fsys types.FS, logger zerolog.Logger) error {
	switch o.Kind {
	case KindRenameDir:
		return renameDir(fsys, o.From, o.To)
	case KindRestoreDir:
		return restoreDir(fsys, logger, o.From, o.To)
	case KindCreateLink:
		return createLink(fsys, o.Target, o.Link)
	case KindDeleteLink:
		return deleteLink(fsys, logger, o.Target, o.Link, o.lenient)
	}
	return errors.Newf(errors.ErrInternal, "unknown operation kind %q", o.Kind)
}

func renameDir(fsys types.FS, from, to string) error {
	st, err := status.Classify(fsys, to)
	if err != nil {
		return err
	}
	// A rename onto an existing empty directory silently replaces it on
	// POSIX; refuse instead
	if st != types.PathAbsent {
		return errors.Newf(errors.ErrUnexpectedState,
			"cannot rename %s: destination %s already exists (%s)", from, to, st).
			WithDetail("from", from).
			WithDetail("to", to)
	}
	if err := fsys.Rename(from, to); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to rename %s to %s", from, to).
			WithDetail("from", from).
			WithDetail("to", to)
	}
	return nil
}

// restoreDir undoes a rename of from to to, looking at what is actually on
// disk at undo time.
func restoreDir(fsys types.FS, logger zerolog.Logger, from, to string) error {
	fromStatus, err := status.Classify(fsys, from)
	if err != nil {
		return err
	}
	toStatus, err := status.Classify(fsys, to)
	if err != nil {
		return err
	}

	switch {
	case !fromStatus.Exists() && toStatus.Exists():
		if err := fsys.Rename(to, from); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to rename %s back to %s", to, from).
				WithDetail("from", to).
				WithDetail("to", from)
		}
		return nil

	case !fromStatus.Exists() && !toStatus.Exists():
		return errors.Newf(errors.ErrDataLoss,
			"both %s and %s are gone, inspect the filesystem manually", from, to).
			WithDetail("from", from).
			WithDetail("to", to)

	case fromStatus.Exists() && !toStatus.Exists():
		logger.Debug().Str("from", from).Str("to", to).Msg("Rename already undone")
		return nil
	}

	// Both exist. An empty real directory at to holds nothing worth keeping.
	empty, err := status.IsEmptyDir(fsys, to)
	if err != nil {
		return err
	}
	if !empty {
		return errors.Newf(errors.ErrDirNotEmpty,
			"cannot restore %s: both it and %s exist and %s is not empty, manual intervention required",
			from, to, to).
			WithDetail("from", from).
			WithDetail("to", to).
			WithDetail("fromStatus", fromStatus.String()).
			WithDetail("toStatus", toStatus.String())
	}
	logger.Warn().Str("path", to).Msg("Removing empty directory left behind by an interrupted rename")
	if err := fsys.Remove(to); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to remove empty directory %s", to)
	}
	return nil
}

func createLink(fsys types.FS, target, link string) error {
	if err := fsys.Symlink(target, link); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create link %s -> %s", link, target).
			WithDetail("target", target).
			WithDetail("link", link)
	}
	return nil
}

func deleteLink(fsys types.FS, logger zerolog.Logger, target, link string, lenient bool) error {
	res, err := status.CheckLink(fsys, link)
	if err != nil {
		return err
	}

	switch res.Status {
	case types.PathAbsent:
		if lenient {
			logger.Debug().Str("link", link).Msg("Link already gone")
			return nil
		}
		return errors.Newf(errors.ErrUnexpectedState, "cannot delete link %s: nothing there", link).
			WithDetail("link", link)
	case types.PathOccupied:
		return errors.Newf(errors.ErrUnexpectedState,
			"refusing to delete %s: it is not a symbolic link", link).
			WithDetail("link", link)
	}

	// Only a link to target is deleted; the inverse recreates exactly that
	if target != "" && !status.SamePath(res.Target, target) {
		logger.Warn().
			Str("link", link).
			Str("expected", target).
			Str("actual", res.Target).
			Msg("Link points somewhere unexpected, refusing to delete it")
		return errors.Newf(errors.ErrUnexpectedState,
			"refusing to delete %s: it points at %s, expected %s", link, res.Target, target).
			WithDetail("link", link).
			WithDetail("expected", target).
			WithDetail("actual", res.Target)
	}
	if err := fsys.Remove(link); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to delete link %s", link).
			WithDetail("link", link)
	}
	return nil
}
