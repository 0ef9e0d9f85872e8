package potential

// Zero is the trivial Potential: every node is worth 0, which reduces
// search.Run to a plain label-setting Dijkstra. It is the baseline every
// other Potential in this package is measured against.
var Zero Potential = Func(func(uint32) int32 { return 0 })
