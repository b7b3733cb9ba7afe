package main

// lambdaName names the anonymous function defined by [ ... ].
const lambdaName = "_"

type function struct {
	name string
	body []string
}

// functions is an ordered registry of user defined functions.
type functions struct {
	defs  []function
	index map[string]int
}

func (fns functions) body(name string) ([]string, bool) {
	if i, defined := fns.index[name]; defined {
		return fns.defs[i].body, true
	}
	return nil, false
}

// define sets name's body; redefining a name replaces its body in place.
func (fns *functions) define(name string, body []string) {
	if i, defined := fns.index[name]; defined {
		fns.defs[i].body = body
		return
	}
	if fns.index == nil {
		fns.index = make(map[string]int)
	}
	fns.index[name] = len(fns.defs)
	fns.defs = append(fns.defs, function{name, body})
}

func (fns *functions) undefine(name string) {
	i, defined := fns.index[name]
	if !defined {
		return
	}
	delete(fns.index, name)
	copy(fns.defs[i:], fns.defs[i+1:])
	fns.defs = fns.defs[:len(fns.defs)-1]
	for ; i < len(fns.defs); i++ {
		fns.index[fns.defs[i].name] = i
	}
}
