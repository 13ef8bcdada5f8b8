package proto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	pb "github.com/mmynk/commonspace/pkg/proto"
)

func TestServices(t *testing.T) {
	tests := []struct {
		file    protoreflect.FileDescriptor
		service protoreflect.Name
		methods int
	}{
		{pb.File_commonspace_v1_auth_proto, "AuthService", 4},
		{pb.File_commonspace_v1_household_proto, "HouseholdService", 4},
		{pb.File_commonspace_v1_expense_proto, "ExpenseService", 9},
	}

	for _, tt := range tests {
		t.Run(string(tt.service), func(t *testing.T) {
			svc := tt.file.Services().ByName(tt.service)
			require.NotNil(t, svc)
			assert.Equal(t, tt.methods, svc.Methods().Len())
			for i := 0; i < svc.Methods().Len(); i++ {
				m := svc.Methods().Get(i)
				assert.False(t, m.Input().IsPlaceholder(), "%s input", m.FullName())
				assert.False(t, m.Output().IsPlaceholder(), "%s output", m.FullName())
			}
		})
	}
}

func TestBalancesWireFormat(t *testing.T) {
	report := &pb.GetBalancesResponse{
		Balances: []*pb.MemberBalance{
			{Person: "a@flat.test", NetBalance: "60.00"},
			{Person: "gone@flat.test", NetBalance: "-60.00", Unknown: true},
		},
		Debts: []*pb.Debt{{From: "gone@flat.test", To: "a@flat.test", Amount: "60.00"}},
	}

	data, err := proto.Marshal(report)
	require.NoError(t, err)
	var decoded pb.GetBalancesResponse
	require.NoError(t, proto.Unmarshal(data, &decoded))
	assert.True(t, proto.Equal(report, &decoded))

	js, err := protojson.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"netBalance"`)
	assert.Contains(t, string(js), `"unknown"`)
}
