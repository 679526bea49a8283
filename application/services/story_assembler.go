package services

import (
	"fmt"
	"html/template"
	"strings"

	"generate-webstory-service/application/ports/inbound"
	"generate-webstory-service/domain"
)

// The document is self-contained: slide state and the next/prev transitions
// live in the embedded script, mirroring domain.Navigation.
const webstoryTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Webstory</title>
    <style>
        body, html {margin: 0; padding: 0; height: 100%; overflow: hidden;}
        .webstory-container {height: 100vh; position: relative;}
        .webstory-slide {height: 100%; width: 100%; position: absolute; top: 0; left: 0; display: none; flex-direction: column; justify-content: flex-end; background-size: cover; background-position: center;}
        .webstory-slide.active {display: flex;}
        .webstory-text {padding: 20px; background: rgba(0,0,0,0.7); color: white; font-family: Arial, sans-serif;}
        .webstory-nav {position: absolute; top: 0; height: 100%; width: 50%; z-index: 10;}
        .webstory-nav.prev {left: 0;}
        .webstory-nav.next {right: 0;}
        .progress-bar {position: absolute; top: 0; left: 0; right: 0; height: 4px; display: flex;}
        .progress-segment {height: 100%; flex: 1; margin: 0 2px; background: rgba(255,255,255,0.3);}
        .progress-segment.active {background: white;}
    </style>
</head>
<body>
    <div class="webstory-container">
        <div class="progress-bar">
{{- range .Slides}}
            <div class="progress-segment" id="progress-{{.Index}}"></div>
{{- end}}
        </div>
{{- range .Slides}}
        <div class="webstory-slide{{if eq .Index 0}} active{{end}}" id="slide-{{.Index}}" style="background-image: url('{{.ImageURL}}');">
            <div class="webstory-text">
                <h2>{{.SourceText}}</h2>
            </div>
        </div>
{{- end}}
        <div class="webstory-nav prev" onclick="prevSlide()"></div>
        <div class="webstory-nav next" onclick="nextSlide()"></div>
    </div>

    <script>
        let currentSlide = 0;
        const slides = document.querySelectorAll('.webstory-slide');
        const progressSegments = document.querySelectorAll('.progress-segment');
        const totalSlides = slides.length;

        progressSegments[0].classList.add('active');

        function showSlide(index) {
            slides.forEach(slide => slide.classList.remove('active'));
            progressSegments.forEach(segment => segment.classList.remove('active'));

            slides[index].classList.add('active');
            progressSegments[index].classList.add('active');
            currentSlide = index;
        }

        function nextSlide() {
            let nextIndex = currentSlide + 1;
            if (nextIndex >= totalSlides) nextIndex = 0;
            showSlide(nextIndex);
        }

        function prevSlide() {
            let prevIndex = currentSlide - 1;
            if (prevIndex < 0) prevIndex = totalSlides - 1;
            showSlide(prevIndex);
        }

        setInterval(nextSlide, 5000);
    </script>
</body>
</html>
`

type webstoryDocument struct {
	Title  string
	Slides []domain.SlideWithImage
}

type storyAssembler struct {
	tmpl *template.Template
}

func NewStoryAssembler() inbound.StoryAssemblerPort {
	return &storyAssembler{
		tmpl: template.Must(template.New("webstory").Parse(webstoryTemplate)),
	}
}

func (s *storyAssembler) Assemble(title string, slides []domain.SlideWithImage) (string, error) {
	if len(slides) == 0 {
		return "", fmt.Errorf("cannot assemble a story without slides")
	}
	if slides[0].Kind != domain.TitleSlideKind {
		return "", fmt.Errorf("slide 0 must be the title slide, got %s", slides[0].Kind)
	}

	var builder strings.Builder
	err := s.tmpl.Execute(&builder, webstoryDocument{
		Title:  title,
		Slides: slides,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render story document: %w", err)
	}

	return builder.String(), nil
}
