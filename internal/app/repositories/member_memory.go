package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/yusuf/schoolhub/internal/app/models"
)

// MemoryMemberStore is an in-memory MemberStore used by unit tests and
// local experiments. Semantics mirror MemberRepository.
type MemoryMemberStore struct {
	mu      sync.RWMutex
	nextID  int64
	members map[int64]*models.Member
}

// NewMemoryMemberStore creates an empty in-memory member store
func NewMemoryMemberStore() *MemoryMemberStore {
	return &MemoryMemberStore{
		nextID:  1,
		members: make(map[int64]*models.Member),
	}
}

func (s *MemoryMemberStore) Create(_ context.Context, member *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member.ID = s.nextID
	s.nextID++

	s.members[member.ID] = copyMember(member)
	return nil
}

func (s *MemoryMemberStore) GetByID(_ context.Context, id int64) (*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}

	return copyMember(member), nil
}

func (s *MemoryMemberStore) GetByType(_ context.Context, memberType models.MemberType) ([]*models.Member, error) {
	return s.query(func(m *models.Member) bool {
		return m.Type == memberType
	}), nil
}

func (s *MemoryMemberStore) Update(_ context.Context, member *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.ID]; !ok {
		return ErrMemberNotFound
	}

	s.members[member.ID] = copyMember(member)
	return nil
}

func (s *MemoryMemberStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; !ok {
		return ErrMemberNotFound
	}

	delete(s.members, id)
	return nil
}

func (s *MemoryMemberStore) CountByType(_ context.Context, memberType models.MemberType) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, member := range s.members {
		if member.Type == memberType {
			count++
		}
	}
	return count, nil
}

func (s *MemoryMemberStore) GetByTypeAndCourse(_ context.Context, memberType models.MemberType, courseID int64) ([]*models.Member, error) {
	return s.query(func(m *models.Member) bool {
		return m.Type == memberType && enrolledIn(m, courseID)
	}), nil
}

func (s *MemoryMemberStore) GetByGroup(_ context.Context, group string) ([]*models.Member, error) {
	return s.query(func(m *models.Member) bool {
		return m.Group == group
	}), nil
}

func (s *MemoryMemberStore) GetByTypeAndGroupAndCourse(_ context.Context, memberType models.MemberType, group string, courseID int64) ([]*models.Member, error) {
	return s.query(func(m *models.Member) bool {
		return m.Type == memberType && m.Group == group && enrolledIn(m, courseID)
	}), nil
}

func (s *MemoryMemberStore) GetByTypeAndMinAgeAndCourse(_ context.Context, memberType models.MemberType, minAge int, courseID int64) ([]*models.Member, error) {
	return s.query(func(m *models.Member) bool {
		// Inclusive age boundary, same as the SQL implementation
		return m.Type == memberType && m.Age >= minAge && enrolledIn(m, courseID)
	}), nil
}

// dropCourse removes a course id from every member's enrollment set,
// mirroring the database cascade on course deletion
func (s *MemoryMemberStore) dropCourse(courseID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range s.members {
		kept := member.CourseIDs[:0]
		for _, id := range member.CourseIDs {
			if id != courseID {
				kept = append(kept, id)
			}
		}
		member.CourseIDs = kept
	}
}

// query returns copies of all members matching the predicate, in id order
func (s *MemoryMemberStore) query(match func(*models.Member) bool) []*models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var members []*models.Member
	for _, member := range s.members {
		if match(member) {
			members = append(members, copyMember(member))
		}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members
}

func enrolledIn(member *models.Member, courseID int64) bool {
	for _, id := range member.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

func copyMember(member *models.Member) *models.Member {
	copied := *member
	copied.CourseIDs = make([]int64, len(member.CourseIDs))
	copy(copied.CourseIDs, member.CourseIDs)
	sort.Slice(copied.CourseIDs, func(i, j int) bool { return copied.CourseIDs[i] < copied.CourseIDs[j] })
	copied.Courses = nil
	return &copied
}
