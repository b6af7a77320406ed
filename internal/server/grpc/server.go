package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/rpc"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	rpc.UnimplementedQuestServer
	address     string
	users       UserService
	categories  CategoryService
	skills      SkillService
	progression ProgressionService
	timeLogs    TimeLogService
	leaderboard LeaderboardService
	export      ExportService
	logger      logging.Logger
	tracerName  string
}

// Deps are the services QuestService delegates to.
type Deps struct {
	Users       UserService
	Categories  CategoryService
	Skills      SkillService
	Progression ProgressionService
	TimeLogs    TimeLogService
	Leaderboard LeaderboardService
	Export      ExportService
}

func NewGRPCServer(a string, l logging.Logger, d Deps) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       d.Users,
		categories:  d.Categories,
		skills:      d.Skills,
		progression: d.Progression,
		timeLogs:    d.TimeLogs,
		leaderboard: d.Leaderboard,
		export:      d.Export,
		tracerName:  "galacticquest/grpc",
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.tracingInterceptor, s.accessTokenInterceptor))
	rpc.RegisterQuestServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

// tracingInterceptor opens a server span per call on the global provider.
func (s *GRPCServer) tracingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx, span := otel.Tracer(s.tracerName).Start(ctx, info.FullMethod)
	defer span.End()

	resp, err := handler(ctx, req)
	if err != nil {
		span.RecordError(err)
	}
	return resp, err
}
