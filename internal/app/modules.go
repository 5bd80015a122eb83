package app

import (
	"github.com/vk/adventofcode/internal/registry"
	"github.com/vk/adventofcode/modules/calorie"
	"github.com/vk/adventofcode/modules/rps"
)

// coreModules is the definitive list of all puzzles that are compiled into
// the binary.
var coreModules = []registry.Module{
	&calorie.Module{},
	&rps.Module{},
}
