// Package proto holds the WarrenAPI gRPC definition. The generated
// bindings (warren.pb.go, warren_grpc.pb.go) are produced by protoc and
// are not checked in; run `go generate ./api/proto` after editing
// warren.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative warren.proto
