package aoc

import (
	"fmt"
	"path"
)

const (
	// DefaultBaseName is used when a package has no base name.
	DefaultBaseName = "package"

	// AssetsDir and InputFile name the puzzle input location inside a package.
	AssetsDir = "assets"
	InputFile = "input.txt"
)

// Package is the identity of a scaffolded package: a base name and an optional
// zero-padded sequence number, optionally tied to a puzzle Spec.
//
// Every With method returns a modified copy; the receiver is never changed.
type Package struct {
	baseName string
	number   *uint8
	digits   *uint8
	spec     *Spec
}

// NewPackage returns a package with the given base name.
func NewPackage(baseName string) Package {
	return Package{baseName: baseName}
}

// WithName returns a copy of p with the base name set.
func (p Package) WithName(name string) Package {
	p.baseName = name
	return p
}

// WithSequenceNumber returns a copy of p with the sequence number set.
// An attached spec gets the same day.
func (p Package) WithSequenceNumber(n uint8) Package {
	p.number = &n

	if p.spec != nil {
		spec := p.spec.WithDay(n)
		p.spec = &spec
	}

	return p
}

// WithDigits returns a copy of p with the padding width set.
func (p Package) WithDigits(n uint8) Package {
	p.digits = &n
	return p
}

// WithSpec returns a copy of p owning a copy of spec. The spec is attached
// as is; later sequence number changes are applied to its day.
func (p Package) WithSpec(spec Spec) Package {
	p.spec = &spec

	return p
}

// WithDay sets the spec day and the sequence number together,
// attaching an empty spec when none is attached.
func (p Package) WithDay(day uint8) Package {
	return p.ensureSpec().WithSequenceNumber(day)
}

// WithYear sets the spec year, attaching an empty spec when none is attached.
func (p Package) WithYear(year uint16) Package {
	p = p.ensureSpec()
	spec := p.spec.WithYear(year)
	p.spec = &spec

	return p
}

// WithToken sets the spec token, attaching an empty spec when none is attached.
func (p Package) WithToken(token string) Package {
	p = p.ensureSpec()
	spec := p.spec.WithToken(token)
	p.spec = &spec

	return p
}

// WithoutSpec returns a copy of p with no spec attached.
func (p Package) WithoutSpec() Package {
	p.spec = nil
	return p
}

// Spec returns a copy of the attached spec and whether one is attached.
func (p Package) Spec() (Spec, bool) {
	if p.spec == nil {
		return Spec{}, false
	}

	return *p.spec, true
}

// BaseName returns the base name, or DefaultBaseName when it is empty.
func (p Package) BaseName() string {
	if p.baseName == "" {
		return DefaultBaseName
	}

	return p.baseName
}

// SequenceNumber returns the sequence number, zero when unset.
func (p Package) SequenceNumber() uint8 {
	if p.number == nil {
		return 0
	}

	return *p.number
}

// Digits returns the padding width, zero when unset.
func (p Package) Digits() uint8 {
	if p.digits == nil {
		return 0
	}

	return *p.digits
}

// FormattedName returns "<base>-<number>" with the number zero-padded to Digits.
func (p Package) FormattedName() string {
	return fmt.Sprintf("%s-%0*d", p.BaseName(), int(p.Digits()), p.SequenceNumber())
}

// String implements fmt.Stringer.
func (p Package) String() string {
	return p.FormattedName()
}

// PackageDir returns the package directory relative to the workspace root.
func (p Package) PackageDir() string {
	return p.FormattedName()
}

// InputPath returns the slash-separated input file path relative to the workspace root.
func (p Package) InputPath() string {
	return path.Join(p.PackageDir(), AssetsDir, InputFile)
}

// ensureSpec attaches an empty spec whose day is the current sequence number.
func (p Package) ensureSpec() Package {
	if p.spec == nil {
		p = p.WithSpec(Spec{Day: p.SequenceNumber()})
	}

	return p
}
