package command

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/learnsphere-dev/learnsphere/shared/api"
	"github.com/urfave/cli"
)

const defaultDescriptionWidth = 60

var (
	listFlags = []cli.Flag{
		cli.IntFlag{
			Name:  "width, w",
			Usage: "truncate descriptions to this many characters, 0 hides them",
			Value: defaultDescriptionWidth,
		},
		cli.BoolFlag{
			Name:  "recommended, r",
			Usage: "list courses recommended for the token's user instead",
		},
	}

	showFlags = []cli.Flag{
		cli.BoolFlag{
			Name:  "html",
			Usage: "print the description as sanitized HTML",
		},
	}
)

func (e *env) coursesList(ctx *cli.Context) error {
	var (
		courses []api.Course
		err     error
	)
	if ctx.Bool("recommended") {
		courses, err = e.client.Recommendations(context.Background(), e.token)
	} else {
		courses, err = e.client.Courses(context.Background(), e.token)
	}
	if err != nil {
		return exitErr(err)
	}
	if len(courses) == 0 {
		fmt.Fprintln(e.out, "no courses found")
		return nil
	}

	width := ctx.Int("width")
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	header := "SLUG\tTITLE\tLEVEL\tPRICE\tRATING"
	if width > 0 {
		header += "\tDESCRIPTION"
	}
	fmt.Fprintln(w, header)
	for _, c := range courses {
		row := fmt.Sprintf("%s\t%s\t%s\t%s\t%s", c.Slug, c.Title, c.Difficulty, price(c.IsFree, c.Price), rating(c.AverageRating))
		if width > 0 {
			row += "\t" + e.text.Plain(c.Description, width)
		}
		fmt.Fprintln(w, row)
	}
	return w.Flush()
}

func (e *env) coursesShow(ctx *cli.Context) error {
	slug := ctx.Args().First()
	if slug == "" {
		return usageErr(ctx, "missing course slug")
	}
	course, err := e.client.Course(context.Background(), slug, e.token)
	if err != nil {
		return exitErr(err)
	}

	fmt.Fprintf(e.out, "%s (%s)\n", course.Title, course.Slug)
	fmt.Fprintf(e.out, "by %s, %s, %s, %d h\n", course.InstructorName, course.Difficulty, price(course.IsFree, course.Price), course.DurationHours)
	fmt.Fprintf(e.out, "rating %s from %d students", rating(course.AverageRating), course.TotalEnrollments)
	if course.IsEnrolled {
		fmt.Fprint(e.out, ", enrolled")
	}
	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out)

	if ctx.Bool("html") {
		fmt.Fprintln(e.out, e.text.HTML(course.Description))
	} else {
		fmt.Fprintln(e.out, e.text.Plain(course.Description, 0))
	}

	for _, m := range course.Modules {
		fmt.Fprintf(e.out, "\n%d. %s\n", m.Order, m.Title)
		for _, l := range m.Lessons {
			preview := ""
			if l.IsPreview {
				preview = " [preview]"
			}
			fmt.Fprintf(e.out, "   - %s (%s, %d min)%s\n", l.Title, l.ContentType, l.DurationMinutes, preview)
		}
	}
	return nil
}

func (e *env) coursesEnroll(ctx *cli.Context) error {
	slug := ctx.Args().First()
	if slug == "" {
		return usageErr(ctx, "missing course slug")
	}
	enrollment, err := e.client.Enroll(context.Background(), slug, e.token)
	if err != nil {
		return exitErr(err)
	}
	title := enrollment.Course.Title
	if title == "" {
		title = slug
	}
	fmt.Fprintf(e.out, "enrolled in %s\n", title)
	return nil
}

func (e *env) dashboard(ctx *cli.Context) error {
	d, err := e.client.StudentDashboard(context.Background(), e.token)
	if err != nil {
		return exitErr(err)
	}

	fmt.Fprintf(e.out, "courses: %d total, %d completed, %d in progress\n", d.TotalCourses, d.CompletedCourses, d.InProgressCourses)
	fmt.Fprintf(e.out, "points:  %d\n", d.TotalPoints)
	if len(d.RecentActivity) == 0 {
		return nil
	}

	fmt.Fprintln(e.out, "\nrecent activity:")
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	for _, a := range d.RecentActivity {
		fmt.Fprintf(w, "  %s\t%.0f%%\t%s\n", a.CourseTitle, a.Progress, a.LastAccessed.Format("2006-01-02"))
	}
	return w.Flush()
}

func price(free bool, amount string) string {
	if free || amount == "" {
		return "free"
	}
	return "$" + amount
}

func rating(avg *float64) string {
	if avg == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *avg)
}
