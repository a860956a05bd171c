package dialog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mkravets/music_school_bot/internal/model"
	"github.com/mkravets/music_school_bot/internal/service"
)

var errStorage = errors.New("storage unavailable")

// fakeDirectory — хранилище преподавателей в памяти.
type fakeDirectory struct {
	teachers map[int64]string   // userID -> ПІБ
	students map[int64][]string // userID -> ученики
	failing  bool
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		teachers: make(map[int64]string),
		students: make(map[int64][]string),
	}
}

func (f *fakeDirectory) IsTeacher(_ context.Context, userID int64) (bool, error) {
	if f.failing {
		return false, errStorage
	}
	_, ok := f.teachers[userID]
	return ok, nil
}

func (f *fakeDirectory) Register(_ context.Context, userID int64, fullName string) error {
	if f.failing {
		return errStorage
	}
	if _, ok := f.teachers[userID]; ok {
		return service.ErrAlreadyRegistered
	}
	f.teachers[userID] = fullName
	return nil
}

func (f *fakeDirectory) Profile(_ context.Context, userID int64) (*model.TeacherProfile, error) {
	if f.failing {
		return nil, errStorage
	}
	name, ok := f.teachers[userID]
	if !ok {
		return nil, nil
	}
	return &model.TeacherProfile{TeacherName: name, Students: f.students[userID]}, nil
}

// fakeLessons — расписание в памяти поверх fakeDirectory.
type fakeLessons struct {
	dir     *fakeDirectory
	entries []*model.ScheduleEntry
	failing bool
}

func newFakeLessons(dir *fakeDirectory) *fakeLessons {
	return &fakeLessons{dir: dir}
}

func (f *fakeLessons) AddLesson(_ context.Context, userID int64, date, room string) error {
	if f.failing {
		return errStorage
	}
	if _, ok := f.dir.teachers[userID]; !ok {
		return service.ErrNotTeacher
	}
	f.entries = append(f.entries, &model.ScheduleEntry{
		ID:        int64(len(f.entries) + 1),
		Date:      date,
		Room:      room,
		TeacherID: userID,
	})
	return nil
}

func (f *fakeLessons) LessonsByTeacher(_ context.Context, userID int64) ([]*model.ScheduleEntry, error) {
	if f.failing {
		return nil, errStorage
	}
	if _, ok := f.dir.teachers[userID]; !ok {
		return nil, service.ErrNotTeacher
	}
	var out []*model.ScheduleEntry
	for _, entry := range f.entries {
		if entry.TeacherID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

// memorySessions — хранилище сессий для тестов диспетчера.
type memorySessions struct {
	sessions map[int64]Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[int64]Session)}
}

func (m *memorySessions) Get(userID int64) (Session, bool) {
	sess, ok := m.sessions[userID]
	return sess, ok
}

func (m *memorySessions) Put(userID int64, sess Session) {
	if sess.State == StateNone {
		delete(m.sessions, userID)
		return
	}
	m.sessions[userID] = sess
}

func (m *memorySessions) Clear(userID int64) {
	delete(m.sessions, userID)
}

const testSecret = "do-re-mi"

func newTestDispatcher(dir *fakeDirectory, lessons *fakeLessons) (*Dispatcher, *memorySessions) {
	sessions := newMemorySessions()
	d := NewDispatcher(
		sessions,
		NewRegistration(dir, testSecret),
		NewBooking(lessons),
		dir,
		lessons,
		nil,
		zap.NewNop(),
	)
	return d, sessions
}
