// Package example holds structures generated from schema/mad.yaml and
// schema/smp.go.
package example

//go:generate go run ../cmd/mkstructs generate -o mad.go -p example schema/mad.yaml schema/smp.go
