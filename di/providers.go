package di

import (
	bookingRepository "nutricoach/internal/domains/booking/repository"
	scheduleService "nutricoach/internal/domains/schedule/service"
)

// provideBookedSlots exposes the booking slot store to the schedule domain
// without a package cycle between the two services.
func provideBookedSlots(slots bookingRepository.BookedSlot) scheduleService.BookedSlots {
	return slots
}
