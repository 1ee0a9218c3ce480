package grpc

import (
	"context"
	"net/http"

	"github.com/m-zajac/contributorgallery/internal/app"
	"github.com/sirupsen/logrus"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	serviceName    = "contributors.Contributors"
	listMethodName = "List"
	listMethod     = "/" + serviceName + "/" + listMethodName
)

// AppService can return repository contributors.
type AppService interface {
	Contributors(ctx context.Context, owner string, repo string) (*app.ContributorList, error)
}

// ContributorsServer is the server API for Contributors service.
type ContributorsServer interface {
	List(context.Context, *ListRequest) (*ListReply, error)
}

// Service implements ContributorsServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
	l          logrus.FieldLogger
}

var _ ContributorsServer = &Service{}

// NewService returns new Service instance.
func NewService(appService AppService, l logrus.FieldLogger) *Service {
	return &Service{
		appService: appService,
		l:          l,
	}
}

// List calls service and returns reply.
func (s *Service) List(ctx context.Context, r *ListRequest) (*ListReply, error) {
	list, err := s.appService.Contributors(ctx, r.Owner, r.Repo)
	if err != nil {
		s.l.WithFields(logrus.Fields{
			"owner": r.Owner,
			"repo":  r.Repo,
		}).Errorf("Error fetching contributors: %v", err)
		return nil, toStatusError(err)
	}

	contributors := make([]*Contributor, 0, len(list.Contributors))
	for _, c := range list.Contributors {
		contributors = append(contributors, &Contributor{
			ID:            c.ID,
			Login:         c.Login,
			AvatarURL:     c.AvatarURL,
			HTMLURL:       c.HTMLURL,
			Contributions: int32(c.Contributions),
		})
	}

	return &ListReply{
		Contributors: contributors,
	}, nil
}

// toStatusError maps app errors to grpc status errors.
func toStatusError(err error) error {
	if app.IsNotFoundError(err) {
		return status.Error(codes.NotFound, "Repository not found")
	}
	if app.IsRateLimitedError(err) {
		return status.Error(codes.ResourceExhausted, "GitHub API rate limit exceeded")
	}
	if upErr, ok := app.AsUpstreamError(err); ok {
		message := upErr.Message
		if message == "" {
			message = "Error from GitHub API"
		}
		return status.Error(httpStatusToCode(upErr.StatusCode), message)
	}

	return status.Error(codes.Internal, "Internal server error")
}

func httpStatusToCode(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

// RegisterContributorsServer registers srv on s.
func RegisterContributorsServer(s *grpc.Server, srv ContributorsServer) {
	s.RegisterService(&contributorsServiceDesc, srv)
}

func listHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContributorsServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: listMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContributorsServer).List(ctx, req.(*ListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var contributorsServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ContributorsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: listMethodName,
			Handler:    listHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contributors",
}
