package domain

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

const DefaultDateFormat = "%Y-%m-%d %Hh%Mm%Ss"

// Destination computes where file goes under targetRoot for timestamp t:
// targetRoot/YYYY/MM/<strftime(dateFormat)>[ <stem>].<ext>. The extension is
// always appended after a dot, so extension-less files end in a dot.
func Destination(targetRoot, file FileRef, t time.Time, dateFormat string, preserveName bool) FileRef {
	dir := targetRoot.Join(t.Format("2006"), t.Format("01"))

	base := strftime.Format(dateFormat, t)
	if preserveName {
		base += " " + file.Stem()
	}
	return dir.Join(base + "." + file.Extension())
}

// ResolveCollision returns candidate if it is not yet assigned, otherwise
// the first free "<stem>_<n>.<ext>" sibling starting at n = 2. Only
// assigned is consulted, never the disk.
func ResolveCollision(candidate FileRef, assigned map[FileRef]struct{}) FileRef {
	if _, taken := assigned[candidate]; !taken {
		return candidate
	}
	dir := candidate.Dir()
	stem := candidate.Stem()
	ext := candidate.Extension()
	for n := 2; ; n++ {
		next := dir.Join(fmt.Sprintf("%s_%d.%s", stem, n, ext))
		if _, taken := assigned[next]; !taken {
			return next
		}
	}
}
