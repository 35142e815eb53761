package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/yusuf/schoolhub/internal/app/models"
)

// MemoryCourseStore is an in-memory CourseStore used by unit tests and
// local experiments. Semantics mirror CourseRepository.
type MemoryCourseStore struct {
	mu      sync.RWMutex
	nextID  int64
	courses map[int64]*models.Course
	members *MemoryMemberStore
}

// NewMemoryCourseStore creates an empty in-memory course store. When a
// member store is given, deleting a course drops enrollment links the
// same way the database cascade does.
func NewMemoryCourseStore(members *MemoryMemberStore) *MemoryCourseStore {
	return &MemoryCourseStore{
		nextID:  1,
		courses: make(map[int64]*models.Course),
		members: members,
	}
}

func (s *MemoryCourseStore) Create(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = s.nextID
	s.nextID++

	stored := *course
	s.courses[course.ID] = &stored
	return nil
}

func (s *MemoryCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, ErrCourseNotFound
	}

	copied := *course
	return &copied, nil
}

func (s *MemoryCourseStore) GetByIDs(_ context.Context, ids []int64) ([]*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int64]bool, len(ids))
	var courses []*models.Course
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if course, ok := s.courses[id]; ok {
			copied := *course
			courses = append(courses, &copied)
		}
	}

	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *MemoryCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		copied := *course
		courses = append(courses, &copied)
	}

	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *MemoryCourseStore) Update(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[course.ID]; !ok {
		return ErrCourseNotFound
	}

	stored := *course
	s.courses[course.ID] = &stored
	return nil
}

func (s *MemoryCourseStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	if _, ok := s.courses[id]; !ok {
		s.mu.Unlock()
		return ErrCourseNotFound
	}

	delete(s.courses, id)
	s.mu.Unlock()

	if s.members != nil {
		s.members.dropCourse(id)
	}
	return nil
}

func (s *MemoryCourseStore) CountByType(_ context.Context, courseType models.CourseType) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, course := range s.courses {
		if course.Type == courseType {
			count++
		}
	}
	return count, nil
}

func (s *MemoryCourseStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.courses[id]
	return ok, nil
}
