package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/suntray-io/suntray/internal/buildinfo"
)

// ============================================================================
// gRPC Service Definition (hand-rolled: the control surface is small enough
// that a JSON codec over hand-written descriptors beats a protoc step)
// ============================================================================

// codecName is the gRPC content-subtype for the JSON codec.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                               { return codecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// DaemonServiceServer is the server interface for DaemonService.
type DaemonServiceServer interface {
	GetStatus(context.Context, *emptypb.Empty) (*DaemonStatus, error)
	Enable(context.Context, *emptypb.Empty) (*DaemonStatus, error)
	Disable(context.Context, *emptypb.Empty) (*DaemonStatus, error)
	SetTemperature(context.Context, *SetTemperatureRequest) (*DaemonStatus, error)
	Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// ============================================================================
// Message Types
// ============================================================================

// DaemonStatus describes the supervisor and its child daemon.
type DaemonStatus struct {
	Running       bool                   `json:"running"`
	Temperature   int32                  `json:"temperature"`
	RunID         string                 `json:"run_id,omitempty"`
	SupervisorPID int32                  `json:"supervisor_pid"`
	StartedAt     *timestamppb.Timestamp `json:"started_at,omitempty"`
	Version       string                 `json:"version"`
}

// SetTemperatureRequest carries a new target temperature in Kelvin.
type SetTemperatureRequest struct {
	Kelvin int32 `json:"kelvin"`
}

// ============================================================================
// Service Registration
// ============================================================================

const serviceName = "suntray.DaemonService"

var daemonServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DaemonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetStatus", Handler: getStatusHandler},
		{MethodName: "Enable", Handler: enableHandler},
		{MethodName: "Disable", Handler: disableHandler},
		{MethodName: "SetTemperature", Handler: setTemperatureHandler},
		{MethodName: "Shutdown", Handler: shutdownHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "daemon_service",
}

// RegisterDaemonServiceServer registers the DaemonServiceServer with the gRPC server.
func RegisterDaemonServiceServer(s *grpc.Server, srv DaemonServiceServer) {
	s.RegisterService(&daemonServiceDesc, srv)
}

func getStatusHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetStatus"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServiceServer).GetStatus(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func enableHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServiceServer).Enable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Enable"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServiceServer).Enable(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func disableHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServiceServer).Disable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Disable"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServiceServer).Disable(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func setTemperatureHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetTemperatureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServiceServer).SetTemperature(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/SetTemperature"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServiceServer).SetTemperature(ctx, req.(*SetTemperatureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func shutdownHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServiceServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Shutdown"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServiceServer).Shutdown(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ============================================================================
// Client
// ============================================================================

// DaemonServiceClient is the client API for DaemonService.
type DaemonServiceClient interface {
	GetStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*DaemonStatus, error)
	Enable(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*DaemonStatus, error)
	Disable(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*DaemonStatus, error)
	SetTemperature(ctx context.Context, in *SetTemperatureRequest, opts ...grpc.CallOption) (*DaemonStatus, error)
	Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type daemonServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDaemonServiceClient creates a DaemonService client on the given connection.
func NewDaemonServiceClient(cc grpc.ClientConnInterface) DaemonServiceClient {
	return &daemonServiceClient{cc: cc}
}

func (c *daemonServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...)
}

func (c *daemonServiceClient) GetStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*DaemonStatus, error) {
	out := new(DaemonStatus)
	if err := c.invoke(ctx, "GetStatus", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonServiceClient) Enable(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*DaemonStatus, error) {
	out := new(DaemonStatus)
	if err := c.invoke(ctx, "Enable", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonServiceClient) Disable(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*DaemonStatus, error) {
	out := new(DaemonStatus)
	if err := c.invoke(ctx, "Disable", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonServiceClient) SetTemperature(ctx context.Context, in *SetTemperatureRequest, opts ...grpc.CallOption) (*DaemonStatus, error) {
	out := new(DaemonStatus)
	if err := c.invoke(ctx, "SetTemperature", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonServiceClient) Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.invoke(ctx, "Shutdown", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ============================================================================
// Service Implementation
// ============================================================================

type daemonService struct {
	server       *Server
	shutdownOnce sync.Once
}

func (s *daemonService) status() *DaemonStatus {
	running, temp, runID := s.server.controller.Status()
	return &DaemonStatus{
		Running:       running,
		Temperature:   int32(temp),
		RunID:         runID,
		SupervisorPID: int32(os.Getpid()),
		StartedAt:     timestamppb.New(s.server.startedAt),
		Version:       buildinfo.Version,
	}
}

func (s *daemonService) GetStatus(ctx context.Context, _ *emptypb.Empty) (*DaemonStatus, error) {
	return s.status(), nil
}

func (s *daemonService) Enable(ctx context.Context, _ *emptypb.Empty) (*DaemonStatus, error) {
	if !s.server.controller.Start() {
		return nil, fmt.Errorf("failed to start daemon, see the suntrayd log")
	}
	return s.status(), nil
}

func (s *daemonService) Disable(ctx context.Context, _ *emptypb.Empty) (*DaemonStatus, error) {
	s.server.controller.Stop()
	return s.status(), nil
}

func (s *daemonService) SetTemperature(ctx context.Context, req *SetTemperatureRequest) (*DaemonStatus, error) {
	s.server.controller.SetTemperature(int(req.Kelvin))
	return s.status(), nil
}

func (s *daemonService) Shutdown(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	s.shutdownOnce.Do(func() {
		close(s.server.shutdownCh)
	})
	return &emptypb.Empty{}, nil
}
