package building

import "gitlab.com/begraf/ikonwerk/data/icon"

type IconSet struct {
	byName map[string]*icon.Icon
}

func NewIconSet() *IconSet {
	return &IconSet{
		byName: make(map[string]*icon.Icon),
	}
}

func (s *IconSet) Add(ic *icon.Icon) {
	s.byName[ic.Name] = ic
}

func (s *IconSet) Contains(name string) bool {
	_, ok := s.byName[name]
	return ok
}

func (s *IconSet) ForEach(f func(*icon.Icon) error) error {
	for _, ic := range s.byName {
		if err := f(ic); err != nil {
			return err
		}

	}
	return nil
}

func (s *IconSet) Len() int {
	return len(s.byName)
}
