package span

import "sort"

// Doc indexes the newlines of a source buffer so byte offsets can be
// converted to line/column pairs on demand. Lines and columns are
// zero-based; columns count bytes.
type Doc struct {
	src []byte
	nls []int
}

func NewDoc(src []byte) *Doc {
	d := &Doc{src: src}
	for i, b := range src {
		if b == '\n' {
			d.nls = append(d.nls, i)
		}
	}
	return d
}

func (d *Doc) Len() int {
	return len(d.src)
}

func (d *Doc) LineCol(p Pos) (int, int) {
	off := int(p)
	n := len(d.nls)
	i := sort.Search(n, func(i int) bool {
		return d.nls[i] >= off
	})
	if i == 0 {
		return 0, off
	}
	return i, off - d.nls[i-1] - 1
}
