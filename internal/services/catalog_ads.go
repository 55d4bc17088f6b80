package services

import (
	"slices"

	"digitalstore/internal/domain"
	"digitalstore/internal/validate"
)

// parseAdForm reports activeSet=false when the form carried no usable
// active flag, so edits can keep the previous value.
func parseAdForm(f domain.AdForm) (ad domain.Ad, activeSet bool, ok bool) {
	title, ok := validate.Name(f.Title)
	if !ok {
		return domain.Ad{}, false, false
	}
	t, ok := validate.AdType(f.Type)
	if !ok {
		t = domain.AdHorizontal
	}
	img, _ := validate.URL(f.Image)
	link, _ := validate.URL(f.Link)
	active, activeSet := validate.Bool(f.Active)
	return domain.Ad{
		Title:       title,
		Description: validate.Text(f.Description),
		Image:       img,
		Link:        link,
		Type:        t,
		Active:      active,
	}, activeSet, true
}

func (s *CatalogService) Ads() []domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ads)
}

// ActiveAds lists the ads that may be displayed, in catalog order.
func (s *CatalogService) ActiveAds() []domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ad, 0, len(s.ads))
	for _, a := range s.ads {
		if a.Active {
			out = append(out, a)
		}
	}
	return out
}

func (s *CatalogService) Ad(id int) (domain.Ad, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.ads {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Ad{}, false
}

// AddAd creates an ad; new ads are active unless the form says otherwise.
func (s *CatalogService) AddAd(form domain.AdForm) (domain.Ad, error) {
	ad, activeSet, ok := parseAdForm(form)
	if !ok {
		return domain.Ad{}, ErrInvalidAd
	}
	if !activeSet {
		ad.Active = true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ad.ID = nextID(s.ads, func(a domain.Ad) int { return a.ID })
	s.ads = append(s.ads, ad)
	save(s.kv, keyAds, s.ads)
	return ad, nil
}

func (s *CatalogService) EditAd(id int, form domain.AdForm) error {
	ad, activeSet, ok := parseAdForm(form)
	if !ok {
		return ErrInvalidAd
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.ads, func(a domain.Ad) bool { return a.ID == id })
	if i < 0 {
		return nil
	}
	ad.ID = id
	if !activeSet {
		ad.Active = s.ads[i].Active
	}
	s.ads[i] = ad
	save(s.kv, keyAds, s.ads)
	return nil
}

// DeleteAd reports whether an ad was removed.
func (s *CatalogService) DeleteAd(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.ads)
	s.ads = slices.DeleteFunc(s.ads, func(a domain.Ad) bool { return a.ID == id })
	if len(s.ads) == n {
		return false
	}
	save(s.kv, keyAds, s.ads)
	return true
}

// ToggleAdActive flips the active flag and reports the new value.
func (s *CatalogService) ToggleAdActive(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.ads, func(a domain.Ad) bool { return a.ID == id })
	if i < 0 {
		return false
	}
	s.ads[i].Active = !s.ads[i].Active
	save(s.kv, keyAds, s.ads)
	return s.ads[i].Active
}
