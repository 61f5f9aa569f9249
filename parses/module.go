package parses

import (
	"github.com/reusee/dscope"
	"github.com/reusee/peopl/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}
