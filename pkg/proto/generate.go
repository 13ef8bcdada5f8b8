// Package proto holds the protobuf messages for the CommonSpace RPC services.
// The *.pb.go files and protoconnect/ are generated from proto/commonspace/v1.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/mmynk/commonspace --connect-go_out=../.. --connect-go_opt=module=github.com/mmynk/commonspace commonspace/v1/auth.proto commonspace/v1/household.proto commonspace/v1/expense.proto
