package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/peopl/parses"
)

type Module struct {
	dscope.Module
	Parses parses.Module
}
