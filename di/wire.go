//go:build wireinject
// +build wireinject

package di

import (
	"nutricoach/config"
	"nutricoach/infras/jwt"
	"nutricoach/infras/kafka"
	"nutricoach/infras/mailer"
	"nutricoach/infras/otel"
	"nutricoach/infras/payment"
	"nutricoach/infras/postgres"
	"nutricoach/infras/redis"
	"nutricoach/infras/s3"
	"nutricoach/shared/cache"
	"nutricoach/transport/http"
	"nutricoach/transport/http/middleware"
	"nutricoach/transport/http/router"

	bookingRepository "nutricoach/internal/domains/booking/repository"
	bookingService "nutricoach/internal/domains/booking/service"
	contentRepository "nutricoach/internal/domains/content/repository"
	contentService "nutricoach/internal/domains/content/service"
	courseRepository "nutricoach/internal/domains/course/repository"
	courseService "nutricoach/internal/domains/course/service"
	scheduleRepository "nutricoach/internal/domains/schedule/repository"
	scheduleService "nutricoach/internal/domains/schedule/service"

	bookingHandler "nutricoach/internal/handlers/booking"
	contentHandler "nutricoach/internal/handlers/content"
	courseHandler "nutricoach/internal/handlers/course"
	scheduleHandler "nutricoach/internal/handlers/schedule"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	mailer.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.NewSlotTemplate,
	scheduleRepository.NewAvailabilityWindow,
	scheduleRepository.NewDateOverride,
	provideBookedSlots,
	scheduleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.NewBookedSlot,
	bookingRepository.NewConsultationRequest,
	bookingRepository.NewCoachingCall,
	bookingService.New,
)

var courseDomain = wire.NewSet(
	courseRepository.NewCourseAccess,
	courseService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.NewTestimonial,
	contentService.New,
)

var domains = wire.NewSet(
	scheduleDomain,
	bookingDomain,
	courseDomain,
	contentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	scheduleHandler.New,
	bookingHandler.New,
	courseHandler.New,
	contentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeReaper() *bookingService.Reaper {
	wire.Build(
		configurations,
		wire.NewSet(
			postgres.New,
			otel.New,
			redis.New,
			kafka.New,
			mailer.New,
			payment.New,
		),
		sharedHelpers,
		bookingDomain,
		bookingService.NewReaper,
	)

	return &bookingService.Reaper{}
}
