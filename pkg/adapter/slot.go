package adapter

import (
	"fmt"
	"strconv"
)

// Slot is the logical category of a flat position.
type Slot uint8

const (
	// SlotNone is returned for positions outside the list.
	SlotNone Slot = iota
	// SlotRegular is a provider item.
	SlotRegular
	// SlotHeader is the leading header row.
	SlotHeader
	// SlotFooter is the trailing footer row.
	SlotFooter
)

func (s Slot) String() string {
	switch s {
	case SlotRegular:
		return "regular"
	case SlotHeader:
		return "header"
	case SlotFooter:
		return "footer"
	default:
		return "none"
	}
}

// ViewType tags the rendering template a host should create or reuse for a
// position. Header and footer tags are distinct values rather than reserved
// integers, so no provider code can collide with them.
//
// ViewType is comparable and can key a map of recycled views.
type ViewType struct {
	slot Slot
	code int
}

var (
	// HeaderType is the view type of the header row.
	HeaderType = ViewType{slot: SlotHeader}
	// FooterType is the view type of the footer row.
	FooterType = ViewType{slot: SlotFooter}
)

// RegularType wraps a provider-defined view type code.
func RegularType(code int) ViewType {
	return ViewType{slot: SlotRegular, code: code}
}

// Slot returns the slot this view type belongs to.
func (t ViewType) Slot() Slot {
	return t.slot
}

// Code returns the provider code of a regular view type.
// The second result is false for header, footer and invalid types.
func (t ViewType) Code() (int, bool) {
	if t.slot != SlotRegular {
		return 0, false
	}
	return t.code, true
}

// Valid reports whether t was produced for an existing position.
func (t ViewType) Valid() bool {
	return t.slot != SlotNone
}

func (t ViewType) String() string {
	if t.slot == SlotRegular {
		return "regular:" + strconv.Itoa(t.code)
	}
	return t.slot.String()
}

// HeaderID identifies the sticky header group of a regular item.
//
// The zero value is [NoStickyHeader], which never equals an identifier built
// with [StickyHeaderID], including StickyHeaderID(0).
type HeaderID struct {
	value uint64
	valid bool
}

// NoStickyHeader means no sticky header is drawn for the position.
var NoStickyHeader = HeaderID{}

// StickyHeaderID wraps a provider-supplied group identifier.
func StickyHeaderID(value uint64) HeaderID {
	return HeaderID{value: value, valid: true}
}

// Valid reports whether h carries an identifier.
func (h HeaderID) Valid() bool {
	return h.valid
}

// SameGroup reports whether h and other name the same sticky header.
// NoStickyHeader belongs to no group, not even its own.
func (h HeaderID) SameGroup(other HeaderID) bool {
	return h.valid && other.valid && h.value == other.value
}

func (h HeaderID) String() string {
	if !h.valid {
		return "none"
	}
	return fmt.Sprintf("%#016x", h.value)
}
