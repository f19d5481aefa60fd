package domain

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// SizeUnit is the unit part of a configured file size limit.
type SizeUnit int

const (
	Byte SizeUnit = iota
	Kilobyte
	Megabyte
	Gigabyte
)

// ParseSizeUnit maps a config value like "megabyte" or "MB" to a SizeUnit.
func ParseSizeUnit(s string) (SizeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "byte", "b":
		return Byte, nil
	case "kilobyte", "kb":
		return Kilobyte, nil
	case "megabyte", "mb":
		return Megabyte, nil
	case "gigabyte", "gb":
		return Gigabyte, nil
	default:
		return Byte, fmt.Errorf("unknown size unit %q", s)
	}
}

// FileSizeLimit is an immutable value + unit pair, configured once at startup.
type FileSizeLimit struct {
	Value int64
	Unit  SizeUnit
}

// Bytes normalizes the limit to a byte count (1024-based units).
func (l FileSizeLimit) Bytes() int64 {
	return l.Value << (10 * uint(l.Unit))
}

func (l FileSizeLimit) String() string {
	return humanize.IBytes(uint64(l.Bytes()))
}
