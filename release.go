//go:build !debug

package quadtree

const debug = false

func assert(bool, ...interface{}) {}
