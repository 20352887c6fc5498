package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	config "github.com/skillbridge/youth_platform/configs"
	"github.com/skillbridge/youth_platform/database"
	"github.com/skillbridge/youth_platform/models"
)

// IssueCertificate creates the course certificate for a student, rendering
// a PDF and storing it in object storage. Issuing twice for the same
// (student, course) is a no-op.
func IssueCertificate(studentID, courseID uuid.UUID) {
	var existing models.Certificate
	if err := database.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error; err == nil {
		return
	}

	var student models.User
	if err := database.DB.Preload("Profile").First(&student, "id = ?", studentID).Error; err != nil {
		log.Printf("🔥 Certificate: student %s not found: %v", studentID, err)
		return
	}
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		log.Printf("🔥 Certificate: course %s not found: %v", courseID, err)
		return
	}

	studentName := student.Username
	if student.Profile != nil {
		studentName = fmt.Sprintf("%s %s", student.Profile.FirstName, student.Profile.LastName)
	}

	certificateURL := ""
	htmlData, err := renderCertificateHTML(studentName, course.Title)
	if err != nil {
		log.Printf("🔥 Failed to render certificate HTML: %v", err)
	} else {
		pdfBytes, err := renderPDFFromHTML(htmlData)
		if err != nil {
			log.Printf("🔥 Failed to generate certificate PDF: %v", err)
		} else if url, err := uploadCertificate(pdfBytes, studentID.String()); err != nil {
			log.Printf("🔥 Failed to upload certificate: %v", err)
		} else {
			certificateURL = url
		}
	}

	certificate := models.Certificate{
		StudentID:      studentID,
		CourseID:       courseID,
		CourseTitle:    course.Title,
		IssuedAt:       time.Now(),
		CertificateURL: certificateURL,
	}
	if err := database.DB.Create(&certificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for student %s: %v", studentID, err)
		return
	}
	log.Printf("✅ Issued certificate for course %q to student %s.", course.Title, studentID)
}

func renderCertificateHTML(studentName, courseTitle string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName string
		CourseTitle string
		IssuedDate  string
	}{
		StudentName: studentName,
		CourseTitle: courseTitle,
		IssuedDate:  time.Now().Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func renderPDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, studentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", studentID, uuid.New().String()),
		Folder:       "youth_platform_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
