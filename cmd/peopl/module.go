package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/peopl/debugs"
)

type Module struct {
	dscope.Module
	Debugs debugs.Module
}
