// Package metrics provides observability hooks for the codelab copy step.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder. When a metrics file is requested on the command line, a
// PrometheusRecorder is registered on a private registry and the gathered
// samples are written with WriteTextfile after the pass finishes, ready for
// the node exporter textfile collector. There is no HTTP listener.
package metrics
