package service

import (
	"context"
	"sync"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// fakeStore is an in-memory stand-in for the MySQL repositories.  The
// booking write paths take the same lock as the reads and enforce the
// capacity and one-booking-per-user invariants inside the critical
// section, mirroring what the real store does under its row lock.
type fakeStore struct {
	mu          sync.Mutex
	enrollments map[uint64]*model.Enrollment     // by user id
	tickets     map[uint64]*model.TicketWithType // by enrollment id
	rooms       map[uint64]*model.Room           // by room id
	bookings    map[uint64]*model.Booking        // by booking id
	nextID      uint64

	roomLookups int // counts RoomStore calls, for precondition-order tests
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		enrollments: map[uint64]*model.Enrollment{},
		tickets:     map[uint64]*model.TicketWithType{},
		rooms:       map[uint64]*model.Room{},
		bookings:    map[uint64]*model.Booking{},
	}
}

func (f *fakeStore) addEnrollment(userID uint64) *model.Enrollment {
	f.nextID++
	e := &model.Enrollment{ID: f.nextID, UserID: userID, Name: "attendee"}
	f.enrollments[userID] = e
	return e
}

func (f *fakeStore) addTicket(enrollmentID uint64, status string, isRemote, includesHotel bool) {
	f.nextID++
	f.tickets[enrollmentID] = &model.TicketWithType{
		Ticket: model.Ticket{ID: f.nextID, EnrollmentID: enrollmentID, Status: status},
		Type:   model.TicketType{IsRemote: isRemote, IncludesHotel: includesHotel},
	}
}

func (f *fakeStore) addRoom(capacity int) *model.Room {
	f.nextID++
	r := &model.Room{ID: f.nextID, HotelID: 1, Name: "room", Capacity: capacity}
	f.rooms[r.ID] = r
	return r
}

func (f *fakeStore) addBooking(userID, roomID uint64) *model.Booking {
	f.nextID++
	b := &model.Booking{ID: f.nextID, UserID: userID, RoomID: roomID}
	f.bookings[b.ID] = b
	return b
}

// ---- EnrollmentStore / TicketStore ----

func (f *fakeStore) FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enrollments[userID], nil
}

func (f *fakeStore) FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.TicketWithType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickets[enrollmentID], nil
}

// ---- RoomStore ----

func (f *fakeStore) GetByID(ctx context.Context, roomID uint64) (*model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roomLookups++
	return f.rooms[roomID], nil
}

func (f *fakeStore) CountBookings(ctx context.Context, roomID uint64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roomLookups++
	return f.countLocked(roomID, 0), nil
}

func (f *fakeStore) countLocked(roomID, excludeUser uint64) int {
	n := 0
	for _, b := range f.bookings {
		if b.RoomID == roomID && (excludeUser == 0 || b.UserID != excludeUser) {
			n++
		}
	}
	return n
}

// ---- bookingStore (BookingStore without FindByUserID, which the
// enrollment map already claims on fakeStore) ----

// fakeBookings wraps fakeStore to satisfy BookingStore; FindByUserID on
// bookings has a different receiver so both lookups can coexist.
type fakeBookings struct{ *fakeStore }

func (f fakeBookings) FindByUserID(ctx context.Context, userID uint64) (*model.BookingWithRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.UserID == userID {
			room := f.rooms[b.RoomID]
			return &model.BookingWithRoom{ID: b.ID, Room: *room}, nil
		}
	}
	return nil, nil
}

func (f fakeBookings) Create(ctx context.Context, userID, roomID uint64) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room := f.rooms[roomID]
	if room == nil {
		return 0, model.ErrRoomNotFound
	}
	for _, b := range f.bookings {
		if b.UserID == userID {
			return 0, model.ErrAlreadyBooked
		}
	}
	if f.countLocked(roomID, 0) >= room.Capacity {
		return 0, model.ErrRoomFull
	}
	f.nextID++
	f.bookings[f.nextID] = &model.Booking{ID: f.nextID, UserID: userID, RoomID: roomID}
	return f.nextID, nil
}

func (f fakeBookings) UpdateRoom(ctx context.Context, bookingID, userID, roomID uint64) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room := f.rooms[roomID]
	if room == nil {
		return 0, model.ErrRoomNotFound
	}
	if f.countLocked(roomID, userID) >= room.Capacity {
		return 0, model.ErrRoomFull
	}
	b := f.bookings[bookingID]
	if b == nil || b.UserID != userID {
		return 0, model.ErrBookingMismatch
	}
	b.RoomID = roomID
	return b.ID, nil
}

// ---- HotelStore ----

type fakeHotels struct {
	hotels []model.Hotel
	rooms  map[uint64][]model.Room // by hotel id
}

func (f *fakeHotels) List(ctx context.Context) ([]model.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeHotels) GetWithRooms(ctx context.Context, hotelID uint64) (*model.HotelWithRooms, error) {
	for _, h := range f.hotels {
		if h.ID == hotelID {
			return &model.HotelWithRooms{Hotel: h, Rooms: f.rooms[hotelID]}, nil
		}
	}
	return nil, nil
}

// ---- TicketCatalog ----

type fakeTicketCatalog struct {
	*fakeStore
	types []model.TicketType
}

func (f *fakeTicketCatalog) ListTypes(ctx context.Context) ([]model.TicketType, error) {
	return f.types, nil
}

func (f *fakeTicketCatalog) TypeExists(ctx context.Context, typeID uint64) (bool, error) {
	for _, tt := range f.types {
		if tt.ID == typeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTicketCatalog) Create(ctx context.Context, enrollmentID, typeID uint64) (*model.TicketWithType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tickets[enrollmentID] != nil {
		return nil, model.ErrTicketExists
	}
	var typ model.TicketType
	for _, tt := range f.types {
		if tt.ID == typeID {
			typ = tt
		}
	}
	f.nextID++
	tw := &model.TicketWithType{
		Ticket: model.Ticket{ID: f.nextID, EnrollmentID: enrollmentID, TicketTypeID: typeID, Status: model.TicketStatusReserved},
		Type:   typ,
	}
	f.tickets[enrollmentID] = tw
	return tw, nil
}
