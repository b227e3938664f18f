package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

const (
	// DefaultPage номер страницы по умолчанию
	DefaultPage = 1
	// DefaultLimit размер страницы по умолчанию
	DefaultLimit = 10
	// MaxLimit максимальный размер страницы
	MaxLimit = 100
)

var (
	// ErrUnknownWeekday возвращается для ключа дня недели вне senin..minggu
	ErrUnknownWeekday = errors.New("unknown weekday")
)

// Request модели

// DayScheduleRequest расписание дня; непереданные поля берутся по умолчанию
type DayScheduleRequest struct {
	IsActive     *bool   `json:"is_active,omitempty"`
	JamKerja     *string `json:"jam_kerja,omitempty"`     // "08:00 - 17:00"
	JamIstirahat *string `json:"jam_istirahat,omitempty"` // "12:00 - 13:00"
}

// ScheduleRequest расписание по дням недели (senin, selasa, ..., minggu)
type ScheduleRequest map[string]DayScheduleRequest

// CreateCapsterRequest запрос на регистрацию капстера
type CreateCapsterRequest struct {
	Username    string          `json:"username"`
	Specialty   string          `json:"spesialis"`
	Phone       string          `json:"phone"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar,omitempty"`
	Email       string          `json:"email"`
	Address     string          `json:"address,omitempty"`
	Album       []string        `json:"album,omitempty"`
	Schedule    ScheduleRequest `json:"schedule,omitempty"`
}

// UpdateCapsterRequest запрос на обновление капстера
// Все поля опциональны - обновляются только переданные значения
// Переданное расписание заменяет текущее целиком (непереданные поля - по умолчанию)
type UpdateCapsterRequest struct {
	Username    *string         `json:"username,omitempty"`
	Specialty   *string         `json:"spesialis,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Description *string         `json:"description,omitempty"`
	Avatar      *string         `json:"avatar,omitempty"`
	Email       *string         `json:"email,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Album       []string        `json:"album,omitempty"`
	Schedule    ScheduleRequest `json:"schedule,omitempty"`
}

// ListFilters фильтры списка; фильтр применяется, только если выставлен флаг set_*
type ListFilters struct {
	SetUsername bool     `json:"set_username"`
	Username    string   `json:"username"`
	SetPhone    bool     `json:"set_phone"`
	Phone       string   `json:"phone"`
	SetEmail    bool     `json:"set_email"`
	Email       string   `json:"email"`
	SetAddress  bool     `json:"set_address"`
	Address     string   `json:"address"`
	SetRating   bool     `json:"set_rating"`
	Rating      *float64 `json:"rating"`
}

// ListCapstersRequest запрос на получение страницы капстеров
type ListCapstersRequest struct {
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Filters ListFilters `json:"filters"`
}

// ToDomainFilter конвертирует request в domain фильтр с нормализованной пагинацией
func (r *ListCapstersRequest) ToDomainFilter() domain.CapstersFilter {
	filter := domain.CapstersFilter{
		Page:  r.Page,
		Limit: r.Limit,
	}
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	f := r.Filters
	if f.SetUsername && f.Username != "" {
		filter.Username = &f.Username
	}
	if f.SetPhone && f.Phone != "" {
		filter.Phone = &f.Phone
	}
	if f.SetEmail && f.Email != "" {
		filter.Email = &f.Email
	}
	if f.SetAddress && f.Address != "" {
		filter.Address = &f.Address
	}
	if f.SetRating && f.Rating != nil {
		filter.Rating = f.Rating
	}

	return filter
}

// ToDomainOverride конвертирует расписание из запроса в частичное расписание
func (s ScheduleRequest) ToDomainOverride() (domain.ScheduleOverride, error) {
	override := make(domain.ScheduleOverride, len(s))
	for key, day := range s {
		weekday, ok := domain.ParseWeekday(strings.ToLower(key))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, key)
		}

		o := domain.DayScheduleOverride{IsActive: day.IsActive}
		if day.JamKerja != nil {
			r, err := types.ParseTimeRange(*day.JamKerja)
			if err != nil {
				return nil, fmt.Errorf("%s.jam_kerja: %w", key, err)
			}
			o.WorkingRange = &r
		}
		if day.JamIstirahat != nil {
			r, err := types.ParseTimeRange(*day.JamIstirahat)
			if err != nil {
				return nil, fmt.Errorf("%s.jam_istirahat: %w", key, err)
			}
			o.BreakRange = &r
		}
		override[weekday] = o
	}
	return override, nil
}

// Response модели

// DayScheduleResponse расписание дня
type DayScheduleResponse struct {
	IsActive     bool   `json:"is_active"`
	JamKerja     string `json:"jam_kerja"`
	JamIstirahat string `json:"jam_istirahat"`
}

// CapsterResponse ответ с данными капстера
type CapsterResponse struct {
	ID          int64                          `json:"id"`
	Username    string                         `json:"username"`
	Specialty   string                         `json:"spesialis"`
	Phone       string                         `json:"phone"`
	Description string                         `json:"description"`
	Avatar      string                         `json:"avatar"`
	Email       string                         `json:"email"`
	Address     string                         `json:"address"`
	Rating      float64                        `json:"rating"`
	Album       []string                       `json:"album"`
	Schedule    map[string]DayScheduleResponse `json:"schedule"`
	CreatedAt   time.Time                      `json:"createdAt"`
	UpdatedAt   time.Time                      `json:"updatedAt"`
}

// PaginationResponse данные пагинации
type PaginationResponse struct {
	Page          int `json:"page"`
	Limit         int `json:"limit"`
	TotalCapsters int `json:"totalCapsters"`
	TotalPages    int `json:"totalPages"`
}

// CapsterListResponse ответ со страницей капстеров
type CapsterListResponse struct {
	Capsters   []CapsterResponse   `json:"capsters"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// Методы конвертации

// FromDomainCapster конвертирует domain модель в DTO
func FromDomainCapster(c *domain.Capster) *CapsterResponse {
	if c == nil {
		return nil
	}

	schedule := make(map[string]DayScheduleResponse, domain.DaysInWeek)
	for _, d := range domain.Weekdays() {
		day := c.Schedule.Day(d)
		schedule[d.Key()] = DayScheduleResponse{
			IsActive:     day.IsActive,
			JamKerja:     day.WorkingRange.String(),
			JamIstirahat: day.BreakRange.String(),
		}
	}

	album := c.Album
	if album == nil {
		album = []string{}
	}

	return &CapsterResponse{
		ID:          c.ID,
		Username:    c.Username,
		Specialty:   c.Specialty,
		Phone:       c.Phone,
		Description: c.Description,
		Avatar:      c.Avatar,
		Email:       c.Email,
		Address:     c.Address,
		Rating:      c.Rating,
		Album:       album,
		Schedule:    schedule,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainCapsterList конвертирует список domain моделей в DTO
func FromDomainCapsterList(capsters []*domain.Capster) []CapsterResponse {
	resp := make([]CapsterResponse, 0, len(capsters))
	for _, c := range capsters {
		resp = append(resp, *FromDomainCapster(c))
	}
	return resp
}

// NewPagination считает количество страниц
func NewPagination(page, limit, total int) *PaginationResponse {
	return &PaginationResponse{
		Page:          page,
		Limit:         limit,
		TotalCapsters: total,
		TotalPages:    int(math.Ceil(float64(total) / float64(limit))),
	}
}
