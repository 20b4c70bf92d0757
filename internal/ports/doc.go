// Package ports defines the interfaces that connect the delivery core to
// its collaborators.
//
// The simulator in internal/sim depends only on these interfaces; concrete
// implementations live in internal/sample (message encoding) and
// internal/adapters (TCP dialing). Tests substitute in-memory fakes.
//
//   - [Transport]: a connected, ordered byte-stream hand-off
//   - [SampleEncoder]: yields one serialized message per sequence number
//   - [Dialer]: establishes (and re-establishes) the transport
package ports
