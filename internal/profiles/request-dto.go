package profiles

type ImageRequest struct {
	URL *string `json:"url" binding:"omitempty,url"`
	Alt *string `json:"alt" binding:"omitempty,max=120"`
}

// UpdateProfileRequest only touches the fields that are present
type UpdateProfileRequest struct {
	Avatar       *ImageRequest `json:"avatar"`
	Banner       *ImageRequest `json:"banner"`
	Bio          *string       `json:"bio" binding:"omitempty,max=180"`
	VenueManager *bool         `json:"venueManager"`
}

func (r UpdateProfileRequest) Apply(f *ProfileForm) {
	r.Avatar.apply(f, SlotAvatar)
	r.Banner.apply(f, SlotBanner)
	if r.Bio != nil {
		f.SetBio(*r.Bio)
	}
	if r.VenueManager != nil {
		f.SetVenueManager(*r.VenueManager)
	}
}

func (r *ImageRequest) apply(f *ProfileForm, slot ImageSlot) {
	if r == nil {
		return
	}
	if r.URL != nil {
		f.SetImage(slot, ImageURL, *r.URL)
	}
	if r.Alt != nil {
		f.SetImage(slot, ImageAlt, *r.Alt)
	}
}
