package mocks

//go:generate mockery --name SeriesStore --srcpkg github.com/aevon-lab/extremes/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
