package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/raster"
)

var black = color.NRGBA{A: 255}

func main() {
	in := flag.String("in", "", "input PNG")
	out := flag.String("out", "", "output PNG (defaults to <in>_outlined.png)")
	passes := flag.String("passes", "", "comma separated colour:thickness passes, e.g. black:2,#ffffff:1 (defaults to generator.yaml)")
	prefabDir := flag.String("prefabs", "prefabs", "directory whose tables override the embedded defaults")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, ".png") + "_outlined.png"
	}
	prefabs.SetDir(*prefabDir)

	list, err := outlinePasses(*passes)
	if err != nil {
		log.Fatal(err)
	}
	src, err := readPNG(*in)
	if err != nil {
		log.Fatal(err)
	}
	if err := writePNG(*out, raster.Outline(src, list...)); err != nil {
		log.Fatal(err)
	}
	log.Printf("outline: wrote %s with %d passes", *out, len(list))
}

func outlinePasses(flagValue string) ([]raster.OutlinePass, error) {
	if strings.TrimSpace(flagValue) == "" {
		gen, err := prefabs.LoadSpec[prefabs.GeneratorSpec]("generator.yaml")
		if err != nil {
			return nil, err
		}
		var list []raster.OutlinePass
		for _, o := range gen.Outlines {
			list = append(list, raster.OutlinePass{Color: o.Color.NRGBA(black), Thickness: o.Thickness})
		}
		return list, nil
	}

	var list []raster.OutlinePass
	for _, part := range strings.Split(flagValue, ",") {
		name, thick, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("outline: pass %q: want colour:thickness", part)
		}
		n, err := strconv.Atoi(thick)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("outline: pass %q: bad thickness", part)
		}
		col, err := parseColor(name)
		if err != nil {
			return nil, err
		}
		list = append(list, raster.OutlinePass{Color: col.NRGBA(black), Thickness: n})
	}
	return list, nil
}

// parseColor accepts an SVG colour name or a hex value.
func parseColor(s string) (prefabs.YAMLColor, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return prefabs.YAMLColor{Color: c}, nil
	}
	var c prefabs.YAMLColor
	if err := yaml.Unmarshal([]byte(strconv.Quote(s)), &c); err != nil {
		return c, fmt.Errorf("outline: colour %q: %w", s, err)
	}
	return c, nil
}

func readPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("outline: decode %s: %w", path, err)
	}
	if n, ok := img.(*image.NRGBA); ok {
		return n, nil
	}
	n := image.NewNRGBA(img.Bounds())
	draw.Draw(n, n.Bounds(), img, img.Bounds().Min, draw.Src)
	return n, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("outline: encode %s: %w", path, err)
	}
	return f.Close()
}
