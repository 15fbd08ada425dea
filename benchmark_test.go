package fill

import "testing"

// BenchmarkBuild benchmarks rasterizing the ramp at various texture sizes.
func BenchmarkBuild(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1024", 1024},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g := NewLinearGradient(0, 0, 100, 40, WithTextureSize(size.size)).
					AddColorStop(0, Red).
					AddColorStop(0.5, Green).
					AddColorStop(1, Blue)
				if _, err := g.Build(); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(size.size * size.size * 4))
		})
	}
}

// BenchmarkPixmapFillRect benchmarks painting a ramp across a surface.
func BenchmarkPixmapFillRect(b *testing.B) {
	pm := NewPixmap(512, 512)
	ramp := pm.CreateLinearRamp(0, 0, 512, 0)
	ramp.AddColorStop(0, Black)
	ramp.AddColorStop(0.3, Red)
	ramp.AddColorStop(1, White)
	pm.SetFill(ramp)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pm.FillRect(0, 0, 512, 512)
	}
	b.SetBytes(512 * 512 * 4)
}

// BenchmarkBuiltColorAt benchmarks per-pixel sampling through the transform.
func BenchmarkBuiltColorAt(b *testing.B) {
	built, err := NewLinearGradient(10, 20, 300, 170).
		AddColorStop(0, Red).
		AddColorStop(1, Blue).
		Build()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = built.ColorAt(float64(i%400), float64(i%300))
	}
}

// BenchmarkStyleKey benchmarks the uncached key computation.
func BenchmarkStyleKey(b *testing.B) {
	built, err := NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, "#ff0000").
		AddColorStop(0.25, "gold").
		AddColorStop(1, "navy").
		Build()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = built.styleKey()
	}
}
