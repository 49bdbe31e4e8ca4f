// Package fixtures holds types that fieldinit tests need to source from a
// package other than their own.
package fixtures

type hiddenGear struct {
	Teeth int
}

// HiddenGear aliases an unexported type. The alias lets another package
// declare a field of this type, while reflection still reports an unexported
// name with this package's path.
type HiddenGear = hiddenGear
