package render

const pageTemplate = `<!doctype html>
<html lang="ar" dir="rtl">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.View.Meta.Title}}</title>
<meta name="description" id="page-desc" content="{{.View.Meta.Description}}">
<link rel="canonical" id="page-canonical" href="{{.View.Meta.Canonical}}">
<meta property="og:url" id="og-url" content="{{.View.Meta.OGURL}}">
<meta property="og:title" id="og-title" content="{{.View.Meta.OGTitle}}">
<meta property="og:description" id="og-desc" content="{{.View.Meta.OGDesc}}">
<meta property="og:image" id="og-image" content="{{.View.Meta.OGImage}}">
<meta property="og:site_name" id="og-site-name" content="{{.View.Meta.OGSiteName}}">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" id="tw-title" content="{{.View.Meta.TwTitle}}">
<meta name="twitter:description" id="tw-desc" content="{{.View.Meta.TwDesc}}">
<meta name="twitter:image" id="tw-image" content="{{.View.Meta.TwImage}}">
<link rel="alternate" hreflang="en" id="hreflang-en" href="{{.View.Meta.Hreflang}}">
{{- range $i, $s := .Schemas}}
<script type="application/ld+json" id="jsonld-details-{{$i}}">{{$s}}</script>
{{- end}}
<link rel="stylesheet" href="/assets/css/course-details.css">
</head>
<body>
<div id="app">
<header class="details-header">
  <div class="page-container">
    <a class="back-link" href="/course/"><i class="bi bi-arrow-right" aria-hidden="true"></i> Back to Courses</a>
    <nav class="breadcrumb-nav" aria-label="Breadcrumb" style="direction:ltr">
      <ol class="breadcrumb">
      {{- range .View.Breadcrumb}}
        {{- if .Active}}
        <li class="breadcrumb-item active" aria-current="page"><span>{{.Label}}</span></li>
        {{- else}}
        <li class="breadcrumb-item"><a href="{{.Href}}">{{.Label}}</a></li>
        {{- end}}
      {{- end}}
      </ol>
    </nav>
    <h1 class="page-title">{{.View.Course.Title}}</h1>
  </div>
</header>
<div class="page-container">
  <div class="row g-4">
    <div class="col-lg-8">
      {{- if .View.Objectives}}
      <section class="details-section" aria-label="What you will learn">
        <h2 class="details-section-title"><i class="bi bi-lightbulb" aria-hidden="true"></i> What You&#39;ll Learn</h2>
        <ul class="objectives-list">
        {{- range .View.Objectives}}
          <li><i class="bi bi-check-circle-fill obj-icon" aria-hidden="true"></i><span>{{.}}</span></li>
        {{- end}}
        </ul>
      </section>
      {{- end}}
      {{- with .View.Curriculum}}
      <section class="details-section" aria-label="Course curriculum">
        <h2 class="details-section-title"><i class="bi bi-journal-text" aria-hidden="true"></i> Curriculum</h2>
        <p class="mb-3 curriculum-summary">{{.Summary}}</p>
        <div class="accordion curriculum-accordion" id="curriculum-accordion">
        {{- range $i, $s := .Sections}}
          <div class="accordion-item">
            <h2 class="accordion-header" id="curr-head-{{$i}}">
              <button class="accordion-button{{if not $s.Open}} collapsed{{end}}" type="button"
                      data-bs-toggle="collapse" data-bs-target="#curr-body-{{$i}}"
                      aria-expanded="{{$s.Open}}" aria-controls="curr-body-{{$i}}">
                <span>{{$s.Title}}</span>
                <span class="curriculum-section-meta">{{$s.Meta}}</span>
              </button>
            </h2>
            <div class="accordion-collapse collapse{{if $s.Open}} show{{end}}" id="curr-body-{{$i}}"
                 aria-labelledby="curr-head-{{$i}}" data-bs-parent="#curriculum-accordion">
              <div class="accordion-body">
                <ul class="lesson-list">
                {{- range $s.Lessons}}
                  <li class="lesson-item">
                    <i class="{{.Icon}} lesson-icon" aria-hidden="true"></i>
                    <span class="lesson-title">{{.Title}}</span>
                    <div class="lesson-meta">
                      {{- if .Duration}}<span class="lesson-duration">{{.Duration}}</span>{{end}}
                      {{- if .Preview}}<span class="lesson-preview-badge">Preview</span>{{end}}
                    </div>
                  </li>
                {{- end}}
                </ul>
              </div>
            </div>
          </div>
        {{- end}}
        </div>
      </section>
      {{- end}}
      {{- if .View.FAQ}}
      <section class="details-section" aria-label="Frequently asked questions">
        <h2 class="details-section-title"><i class="bi bi-question-circle" aria-hidden="true"></i> Frequently Asked Questions</h2>
        <div class="accordion faq-accordion" id="faq-accordion">
        {{- range $i, $f := .View.FAQ}}
          <div class="accordion-item">
            <h3 class="accordion-header" id="faq-head-{{$i}}">
              <button class="accordion-button collapsed" type="button" data-bs-toggle="collapse"
                      data-bs-target="#faq-body-{{$i}}" aria-expanded="false" aria-controls="faq-body-{{$i}}">{{$f.Question}}</button>
            </h3>
            <div class="accordion-collapse collapse" id="faq-body-{{$i}}"
                 aria-labelledby="faq-head-{{$i}}" data-bs-parent="#faq-accordion">
              <div class="accordion-body">{{$f.Answer}}</div>
            </div>
          </div>
        {{- end}}
        </div>
      </section>
      {{- end}}
    </div>
    <div class="col-lg-4">
      <div class="details-sidebar">
        <div class="sidebar-card">
          <img class="sidebar-course-img" src="/assets/img/{{.View.Course.Image}}" alt="{{.View.Course.Title}}" loading="eager" decoding="async">
          <div class="sidebar-content">
            <div class="price-display" style="direction:ltr"{{with .View.Price.AriaLabel}} aria-label="{{.}}"{{end}}>
              {{- if .View.Price.Free}}
              <span class="price-current free">Free</span>
              {{- else if .View.Price.HasDiscount}}
              <span class="price-original" aria-hidden="true">{{.View.Price.Original}}</span>
              <span class="price-current" aria-hidden="true">{{.View.Price.Current}}</span>
              <span class="price-discount" aria-hidden="true">{{.View.Price.DiscountPercent}}% OFF<span class="price-discount-dot">&middot;</span>Save ${{.View.Price.Saved}}</span>
              {{- else}}
              <span class="price-current" aria-hidden="true">{{.View.Price.Current}}</span>
              {{- end}}
            </div>
            <div class="sidebar-buttons" style="direction:ltr">
            {{- range .View.Actions}}
              <a class="{{if eq .Kind "enter"}}btn-enter-course{{else}}btn-buy{{end}}" href="{{.Href}}"
                 {{- if .External}} target="_blank" rel="noopener noreferrer"{{end}} aria-label="{{.AriaLabel}}"><i class="{{.Icon}}" aria-hidden="true"></i> {{.Label}}</a>
            {{- end}}
            </div>
            <ul class="course-meta-list" style="direction:ltr">
            {{- range .View.MetaRows}}
              <li class="course-meta-item">
                <span class="meta-label"><i class="bi {{.Icon}}" aria-hidden="true"></i>{{.Label}}</span>
                <span class="meta-value">{{.Value}}</span>
              </li>
            {{- end}}
              <li class="course-meta-item">
                <span class="meta-label"><i class="bi bi-star-fill" aria-hidden="true"></i>Rating</span>
                <span class="meta-value" id="meta-rating-value"><span class="meta-rating-inline">{{.View.RatingText}}</span></span>
              </li>
              <li class="course-meta-item">
                <span class="meta-label"><i class="bi bi-calendar3" aria-hidden="true"></i>Updated</span>
                <span class="meta-value">{{.View.Updated}}</span>
              </li>
            </ul>
          </div>
        </div>
        <div class="rating-card" id="rating-card" data-course-id="{{.View.Course.ID}}">
          <h3 class="rating-card-title">Rate This Course</h3>
          <p class="rating-card-subtitle">Share your experience with other students</p>
          <div class="rating-big-number" id="rating-big-number">&mdash;</div>
          <div id="rating-display-stars"></div>
          <p class="rating-count" id="rating-count-text">Loading ratings...</p>
          <div id="rating-interactive-stars"></div>
          <p class="rating-status" id="rating-status-msg"></p>
        </div>
      </div>
    </div>
  </div>
</div>
</div>
<button class="chat-fab chat-fab--pulse" id="chat-fab" type="button" aria-expanded="false" aria-label="Open course assistant" data-course-id="{{.View.Chat.CourseID}}">
  <i class="bi bi-chat-dots-fill chat-fab-icon chat-fab-icon--open" aria-hidden="true"></i>
  <i class="bi bi-x-lg chat-fab-icon chat-fab-icon--close" aria-hidden="true"></i>
</button>
<div class="chat-widget" id="chat-widget">
  <div class="chat-header" id="chat-header">
    <div class="chat-header-info">
      <div class="chat-header-avatar"><i class="bi bi-robot" aria-hidden="true"></i></div>
      <div>
        <div class="chat-header-name">{{.View.Chat.BotName}}</div>
        <div class="chat-header-status">{{.View.Chat.CourseTitle}}</div>
      </div>
    </div>
    <button class="chat-header-close" type="button" aria-label="Close course assistant"><i class="bi bi-x-lg" aria-hidden="true"></i></button>
  </div>
  <div class="chat-messages" id="chat-messages" role="log" aria-live="polite" aria-label="Course assistant conversation">
  {{- range .Bubbles}}
    <div class="{{.RoleClass}}">
    {{- range .Paragraphs}}
      <p class="chat-bubble-text">{{.}}</p>
    {{- end}}
    </div>
  {{- end}}
  </div>
  <div class="chat-typing" id="chat-typing" aria-hidden="true">
    <div class="chat-typing-dots"><span class="chat-typing-dot"></span><span class="chat-typing-dot"></span><span class="chat-typing-dot"></span></div>
  </div>
  <div class="chat-input-area">
    <textarea class="chat-input" id="chat-input" placeholder="{{.View.Chat.Placeholder}}" rows="1" maxlength="{{.View.Chat.MaxMessageLen}}" aria-label="{{.View.Chat.Placeholder}}"></textarea>
    <button class="chat-send-btn" id="chat-send-btn" type="button" disabled aria-label="Send message"><i class="bi bi-send-fill" aria-hidden="true"></i></button>
  </div>
</div>
<script src="/assets/js/course-details.js" defer></script>
</body>
</html>
`

const notFoundTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="robots" content="{{.Meta.Robots}}">
<link rel="stylesheet" href="/assets/css/course-details.css">
</head>
<body>
<div id="app">
  <div class="error-container">
    <i class="bi bi-exclamation-triangle error-icon" aria-hidden="true"></i>
    <h1 class="error-title">Course Not Found</h1>
    <p class="error-text">The course you are looking for does not exist.</p>
    <a class="error-btn" href="/course/"><i class="bi bi-arrow-left" aria-hidden="true"></i> Browse Courses</a>
  </div>
</div>
</body>
</html>
`
