package staff

import (
	"errors"

	"carebase-api/internal/util"
)

// UploadPhoto stores a base64 profile photo in the photo bucket and
// writes the public URL back onto the staff row.
func (ss *StaffService) UploadPhoto(facilityID, staffID, base64Data, contentType string) (string, error) {
	s, err := ss.GetStaff(facilityID, staffID)
	if err != nil {
		return "", err
	}
	if ss.CFG == nil || ss.CFG.PhotoBucket == "" {
		return "", errors.New("photo bucket is not configured")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	object := util.StaffPhotoObject(facilityID, s.ID, s.Name)
	url, _, err := util.UploadBase64ToGCS(base64Data, contentType, ss.CFG.PhotoBucket, object)
	if err != nil {
		return "", err
	}

	if err := ss.DB.Model(s).Update("photo_url", url).Error; err != nil {
		return "", err
	}
	return url, nil
}

// UploadCertificate stores a qualification certificate in the
// certificate bucket and writes the URL onto the employment record.
func (ss *StaffService) UploadCertificate(facilityID string, recordID uint, filename, base64Data, contentType string) (string, error) {
	var record EmploymentRecord
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, recordID).First(&record).Error; err != nil {
		return "", err
	}
	if ss.CFG == nil || ss.CFG.CertificateBucket == "" {
		return "", errors.New("certificate bucket is not configured")
	}
	if filename == "" {
		return "", errors.New("filename is required")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	object := util.CertificateObject(facilityID, record.StaffID, filename)
	url, _, err := util.UploadBase64ToGCS(base64Data, contentType, ss.CFG.CertificateBucket, object)
	if err != nil {
		return "", err
	}

	if err := ss.DB.Model(&record).Update("certificate_url", url).Error; err != nil {
		return "", err
	}
	return url, nil
}

// ListCertificates lists the stored certificate objects for a staff row.
func (ss *StaffService) ListCertificates(facilityID, staffID string) ([]string, error) {
	if ss.CFG == nil || ss.CFG.CertificateBucket == "" {
		return nil, errors.New("certificate bucket is not configured")
	}
	prefix := "certificates/" + util.SanitizePart(facilityID) + "/" + util.SanitizePart(staffID) + "/"
	return util.ListGCSObjects(ss.CFG.CertificateBucket, prefix)
}
