// Package rating provides credit risk rating systems built on the object
// composition core: immutable rating scale and metadata containers, a
// one-dimensional rating system, a two-dimensional PD/LGD system, and
// pre-built industry standard systems (Uniform Classification, Moody's,
// Farm Credit System).
//
// Rating systems are composable objects: their configuration, scales and
// metadata are declared parameters, so object.GetParams, object.SetParams,
// object.Clone and object.Render all apply. Class-level tags describe each
// system's dimensionality and risk measures.
//
// Grades are strings; numeric scales (such as the Farm Credit System's 1-14
// PD scale) use their decimal spelling and order naturally.
package rating
