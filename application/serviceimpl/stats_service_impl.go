package serviceimpl

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/repositories"
	"tododeck/domain/services"
	"tododeck/infrastructure/redis"
	"tododeck/pkg/logger"
)

type StatsServiceImpl struct {
	todoRepo repositories.TodoRepository
	cache    *redis.Client // nil ได้ ถ้าไม่ได้ต่อ Redis
	cacheTTL time.Duration
	now      func() time.Time
}

func NewStatsService(todoRepo repositories.TodoRepository) services.StatsService {
	return &StatsServiceImpl{
		todoRepo: todoRepo,
		now:      time.Now,
	}
}

// NewStatsServiceWithCache เหมือน NewStatsService แต่ cache ผลลัพธ์ใน Redis
func NewStatsServiceWithCache(todoRepo repositories.TodoRepository, cache *redis.Client, ttl time.Duration) services.StatsService {
	return &StatsServiceImpl{
		todoRepo: todoRepo,
		cache:    cache,
		cacheTTL: ttl,
		now:      time.Now,
	}
}

func statsCacheKey(userID uuid.UUID) string {
	return "stats:" + userID.String()
}

func (s *StatsServiceImpl) GetStats(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error) {
	if s.cache == nil {
		return s.compute(ctx, userID)
	}

	var stats dto.StatsResponse
	err := s.cache.GetOrSet(ctx, statsCacheKey(userID), &stats, s.cacheTTL, func() (interface{}, error) {
		return s.compute(ctx, userID)
	})
	if err != nil {
		// Redis ล่มไม่ควรทำให้ stats อ่านไม่ได้
		logger.WarnContext(ctx, "Stats cache unavailable, computing directly", "user_id", userID, "error", err)
		return s.compute(ctx, userID)
	}
	return &stats, nil
}

func (s *StatsServiceImpl) InvalidateCache(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey(userID)); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate stats cache", "user_id", userID, "error", err)
	}
}

// compute คำนวณสถิติทั้งหมดจาก todos ที่ user เป็นเจ้าของ
// shared-in todos ไม่ถูกนับ
func (s *StatsServiceImpl) compute(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error) {
	todos, err := s.todoRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	return &dto.StatsResponse{
		Overview:      computeOverview(todos, now),
		Categories:    computeCategoryStats(todos),
		DailyActivity: computeDailyActivity(todos, now),
		Productivity:  computeProductivity(todos, now),
	}, nil
}

func computeOverview(todos []*models.Todo, now time.Time) dto.StatsOverview {
	var overview dto.StatsOverview
	for _, t := range todos {
		overview.Total++
		if t.Completed {
			overview.Completed++
		} else if !t.IsArchived {
			// archived ที่ยังไม่เสร็จไม่นับเป็น active
			overview.Active++
		}
		if t.IsOverdue(now) {
			overview.Overdue++
		}
	}

	if overview.Total > 0 {
		rate := float64(overview.Completed) / float64(overview.Total) * 100
		overview.CompletionRate = math.Round(rate*10) / 10
	}

	return overview
}

func computeCategoryStats(todos []*models.Todo) []dto.CategoryStat {
	type bucket struct {
		name  *string
		color *string
		stat  *dto.CategoryStat
	}

	buckets := map[string]*bucket{}
	for _, t := range todos {
		key := ""
		var name, color *string
		if t.Category != nil {
			key = t.Category.Name
			n, c := t.Category.Name, t.Category.Color
			name, color = &n, &c
		}

		b, ok := buckets[key]
		if !ok {
			b = &bucket{name: name, color: color, stat: &dto.CategoryStat{Name: name, Color: color}}
			buckets[key] = b
		}
		b.stat.Total++
		if t.Completed {
			b.stat.Completed++
		}
	}

	// เรียงตามชื่อ โดย bucket "ไม่มี category" อยู่ท้ายสุด
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]dto.CategoryStat, 0, len(buckets))
	for _, k := range keys {
		out = append(out, *buckets[k].stat)
	}
	if b, ok := buckets[""]; ok {
		out = append(out, *b.stat)
	}
	return out
}

// computeDailyActivity สร้าง histogram ย้อนหลัง 7 วัน เรียงจากวันเก่าสุดไปวันนี้
// คืน 7 entry เสมอแม้ไม่มีข้อมูล
func computeDailyActivity(todos []*models.Todo, now time.Time) []dto.DailyActivity {
	out := make([]dto.DailyActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entry := dto.DailyActivity{
			Date: day.Format("2006-01-02"),
			Day:  day.Format("Mon"),
		}

		for _, t := range todos {
			if sameDay(t.CreatedAt, day) {
				entry.Created++
			}
			if t.CompletedAt != nil && sameDay(*t.CompletedAt, day) {
				entry.Completed++
			}
		}

		out = append(out, entry)
	}
	return out
}

func computeProductivity(todos []*models.Todo, now time.Time) dto.Productivity {
	var productivity dto.Productivity

	// avg completion time เป็นจำนวนวันเต็มของ (completed_at - created_at) เฉลี่ย
	var totalDuration time.Duration
	var completedCount int64
	for _, t := range todos {
		if t.Completed && t.CompletedAt != nil {
			totalDuration += t.CompletedAt.Sub(t.CreatedAt)
			completedCount++
		}
	}
	if completedCount > 0 {
		avgDays := int64(totalDuration.Hours() / float64(completedCount) / 24)
		productivity.AvgCompletionTime = &avgDays
	}

	// most productive day = วันที่มี completion มากสุดใน 7 วันล่าสุด
	// first-max ล้วนๆ: เสมอกันเลือกวันที่เก่ากว่า สัปดาห์ที่ศูนย์หมดได้วันแรกของหน้าต่าง
	daily := computeDailyActivity(todos, now)
	best := daily[0]
	for _, entry := range daily[1:] {
		if entry.Completed > best.Completed {
			best = entry
		}
	}
	day := best.Day
	productivity.MostProductiveDay = &day

	return productivity
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
