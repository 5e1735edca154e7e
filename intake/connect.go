package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/tailored-agentic-units/speechgate/request"
)

const (
	// ServiceName is the fully-qualified connect service name.
	ServiceName = "speechgate.v1.IntakeService"

	// SubmitProcedure carries a descriptor as a google.protobuf.Struct and
	// answers with a google.protobuf.BoolValue verdict.
	SubmitProcedure = "/" + ServiceName + "/Submit"
)

// NewHandler returns the connect handler for svc and the path to mount it on.
// Undecodable and declined requests both answer false; connect errors are
// never returned for a verdict.
func NewHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	h := connect.NewUnaryHandler(
		SubmitProcedure,
		func(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[wrapperspb.BoolValue], error) {
			body, err := json.Marshal(req.Msg.AsMap())
			if err != nil {
				return connect.NewResponse(wrapperspb.Bool(false)), nil
			}
			return connect.NewResponse(wrapperspb.Bool(svc.SubmitJSON(ctx, "intake.connect", body))), nil
		},
		opts...,
	)
	return SubmitProcedure, h
}

// Client submits descriptors to a remote gateway.
type Client struct {
	submit *connect.Client[structpb.Struct, wrapperspb.BoolValue]
}

// NewClient creates a client for the gateway at baseURL.
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	return &Client{
		submit: connect.NewClient[structpb.Struct, wrapperspb.BoolValue](
			httpClient,
			strings.TrimRight(baseURL, "/")+SubmitProcedure,
			opts...,
		),
	}
}

// Submit sends d and returns the gateway verdict. An error means the call
// itself failed, never that the request was declined.
func (c *Client) Submit(ctx context.Context, d *request.Descriptor) (bool, error) {
	msg, err := toStruct(d)
	if err != nil {
		return false, err
	}

	resp, err := c.submit.CallUnary(ctx, connect.NewRequest(msg))
	if err != nil {
		return false, fmt.Errorf("submit: %w", err)
	}
	return resp.Msg.GetValue(), nil
}

func toStruct(d *request.Descriptor) (*structpb.Struct, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}
	return s, nil
}
