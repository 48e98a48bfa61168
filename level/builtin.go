package level

import "github.com/pkg/errors"

// builtinMap pairs a glyph map with its successor.
type builtinMap struct {
	src    string
	nextID int
}

var builtins = map[int]builtinMap{
	1: {nextID: 2, src: `
####################
#@  ~~~   sector   #
#   ~~~        .   #
#      1           #
#   ~~~~~~     .   #
#          ~~     X#
####################`},

	2: {nextID: 3, src: `
########################
#@   ~~~~    defrag    #
#  #####       ####    #
#  #~~~#  2    #~~# .  #
#  #~~~#       #~~#    #
#  #####  1    ####    #
#      ~~~~~~       3  #
#   .        ~~~~     X#
########################`},

	3: {nextID: 0, src: `
##############################
#@ ~~~ purge ~~~ the ~~~     #
#  ###############  ####     #
#  2   ~~~~~~~~~~   3        #
#  ###############  ####     #
#   kernel  1   ~~~~~~~~     #
#      ~~~~~~~~              #
#  3        .       2       X#
##############################`},
}

type builtinSource struct{}

// Builtin returns the embedded level set.
func Builtin() Source { return builtinSource{} }

func (builtinSource) Load(id int) (*Level, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, errors.Errorf("no level with id %d", id)
	}
	lvl, err := parse(id, b.src, b.nextID)
	if err != nil {
		return nil, errors.Wrap(err, "parsing builtin level")
	}
	return lvl, nil
}
