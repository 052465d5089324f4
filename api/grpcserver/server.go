// Package grpcserver adapts the engine service to the gRPC contract.
package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"crux/api/pb"
	"crux/domain/book"
	"crux/service"
)

// Server adapts service.Engine to gRPC.
type Server struct {
	pb.UnimplementedMatchingEngineServer
	svc *service.Engine
}

func NewServer(svc *service.Engine) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.PlaceOrderResponse, error) {
	seq, err := s.svc.PlaceOrder(toSide(req.Side), req.Symbol, req.Qty, req.Price)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PlaceOrderResponse{SeqId: seq}, nil
}

func (s *Server) Match(ctx context.Context, req *pb.MatchRequest) (*pb.MatchResponse, error) {
	results := s.svc.MatchOnce()

	resp := &pb.MatchResponse{
		Executions: make([]*pb.Execution, 0, len(results)),
	}
	for _, m := range results {
		resp.Executions = append(resp.Executions, &pb.Execution{
			Symbol:    m.Symbol,
			Qty:       m.Qty,
			BuyPrice:  m.BuyPrice,
			SellPrice: m.SellPrice,
		})
	}
	return resp, nil
}

// -------------------- Queries --------------------

func (s *Server) GetDepth(ctx context.Context, req *pb.DepthRequest) (*pb.DepthResponse, error) {
	if req.MaxLevels < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "max_levels %d must not be negative", req.MaxLevels)
	}
	bids, asks, ok := s.svc.Depth(req.Symbol, int(req.MaxLevels))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "symbol %q not registered", req.Symbol)
	}
	return &pb.DepthResponse{
		Bids: toLevels(bids),
		Asks: toLevels(asks),
	}, nil
}

// -------------------- Converters --------------------

func toSide(s pb.Side) book.Side {
	if s == pb.Side_SIDE_SELL {
		return book.Sell
	}
	return book.Buy
}

func toLevels(levels []service.Level) []*pb.DepthLevel {
	out := make([]*pb.DepthLevel, 0, len(levels))
	for _, l := range levels {
		out = append(out, &pb.DepthLevel{Price: l.Price, Qty: l.Qty})
	}
	return out
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, book.ErrInvalidOrder):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, book.ErrCapacityExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
