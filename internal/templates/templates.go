package templates

// HTML bodies for every mail kind. All share the same dark layout used
// across the platform's notification mails.

const baseHeader = `
<div style="background-color:#0a0a0a; padding:32px 16px; font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:640px; margin:0 auto; background-color:#111111; border:1px solid #1e1e1e; border-radius:12px; overflow:hidden;">
    <div style="padding:24px 32px; border-bottom:1px solid #1e1e1e;">
      <h1 style="margin:0; color:#f9fafb; font-size:20px;">{{ .GymName | default "Powercave" }}</h1>
    </div>
    <div style="padding:32px;">`

const baseFooter = `
    </div>
    <div style="padding:16px 32px; border-top:1px solid #1e1e1e; text-align:center;">
      <p style="margin:0; color:#6b7280; font-size:12px;">&copy; {{ now | date "2006" }} {{ .GymName | default "Powercave" }}. All rights reserved.</p>
    </div>
  </div>
</div>`

const reminderBody = baseHeader + `
      <h2 style="margin:0 0 16px; color:#f9fafb; font-size:18px;">Hi {{ .UserName }},</h2>
      <p style="color:#d1d5db; font-size:14px; line-height:1.6;">
        This is a reminder that your plan <strong style="color:#f9fafb;">{{ .PlanName }}</strong>
        expires on <strong style="color:#f59e0b;">{{ .ExpiryDate }}</strong>.
      </p>
      <p style="color:#d1d5db; font-size:14px; line-height:1.6;">
        Renew before it expires to keep training without interruptions.
      </p>` + baseFooter

const discountBody = baseHeader + `
      <h2 style="margin:0 0 16px; color:#f9fafb; font-size:18px;">Hi {{ .UserName }},</h2>
      <p style="color:#d1d5db; font-size:14px; line-height:1.6;">
        We have a special promotion for you: up to <strong style="color:#10b981;">35% off</strong> on plan renewals.
      </p>
      <p style="color:#d1d5db; font-size:14px; line-height:1.6;">
        The offer ends on <strong style="color:#f59e0b;">{{ .PromotionEndDate }}</strong>. Don't miss it.
      </p>` + baseFooter

const passwordResetBody = baseHeader + `
      <h2 style="margin:0 0 16px; color:#f9fafb; font-size:18px;">Password reset</h2>
      <p style="color:#d1d5db; font-size:14px; line-height:1.6;">
        We received a request to reset your password. Click the button below to choose a new one.
      </p>
      <p style="text-align:center; margin:24px 0;">
        <a href="{{ .ResetLink }}" style="background-color:#10b981; color:#0a0a0a; padding:12px 24px; border-radius:8px; text-decoration:none; font-weight:600;">Reset password</a>
      </p>
      <p style="color:#6b7280; font-size:12px;">If you did not request this, you can safely ignore this email.</p>` + baseFooter

const platformCredentialsBody = baseHeader + `
      <h2 style="margin:0 0 16px; color:#f9fafb; font-size:18px;">Your account credentials</h2>
      <p style="color:#d1d5db; font-size:14px; line-height:1.6;">
        An account has been created for <strong style="color:#f9fafb;">{{ .UserEmail }}</strong>.
        Your temporary password is:
      </p>
      <p style="text-align:center; margin:24px 0;">
        <code style="background-color:#0f0f0f; color:#10b981; padding:12px 24px; border-radius:8px; font-size:16px;">{{ .TemporaryPassword }}</code>
      </p>
      <p style="color:#d1d5db; font-size:14px; line-height:1.6;">
        Please change it right away:
        <a href="{{ .ResetPasswordLink }}" style="color:#10b981;">set a new password</a>.
      </p>` + baseFooter

const reminderReportBody = baseHeader + `
      <h2 style="margin:0 0 8px; color:#f9fafb; font-size:18px;">Daily reminder dispatch report</h2>
      <p style="margin:0 0 24px; color:#6b7280; font-size:13px;">{{ .ReportDate }}</p>
      <table style="width:100%; border-collapse:collapse; margin-bottom:24px;">
        <tr>
          <td style="padding:12px; text-align:center; background-color:#0f0f0f; border-radius:8px;">
            <div style="color:#f9fafb; font-size:22px; font-weight:700;">{{ .Total }}</div>
            <div style="color:#6b7280; font-size:12px;">Total</div>
          </td>
          <td style="padding:12px; text-align:center; background-color:#0f0f0f;">
            <div style="color:#10b981; font-size:22px; font-weight:700;">{{ .Successful }}</div>
            <div style="color:#6b7280; font-size:12px;">Sent</div>
          </td>
          <td style="padding:12px; text-align:center; background-color:#0f0f0f;">
            <div style="color:#f59e0b; font-size:22px; font-weight:700;">{{ .Skipped }}</div>
            <div style="color:#6b7280; font-size:12px;">Skipped</div>
          </td>
          <td style="padding:12px; text-align:center; background-color:#0f0f0f; border-radius:8px;">
            <div style="color:#ef4444; font-size:22px; font-weight:700;">{{ .Failed }}</div>
            <div style="color:#6b7280; font-size:12px;">Failed</div>
          </td>
        </tr>
      </table>
      <table style="width:100%; border-collapse:collapse;">
        <tr>
          <th style="padding:10px 8px; text-align:left; color:#6b7280; font-size:12px; border-bottom:1px solid #1e1e1e;">Member ID</th>
          <th style="padding:10px 8px; text-align:left; color:#6b7280; font-size:12px; border-bottom:1px solid #1e1e1e;">Email</th>
          <th style="padding:10px 8px; text-align:center; color:#6b7280; font-size:12px; border-bottom:1px solid #1e1e1e;">Status</th>
          <th style="padding:10px 8px; text-align:left; color:#6b7280; font-size:12px; border-bottom:1px solid #1e1e1e;">Detail</th>
        </tr>
        {{ range .Rows }}
        <tr>
          <td style="padding:10px 8px; border-bottom:1px solid #1e1e1e; font-family:monospace; font-size:12px; color:#6b7280;">{{ .PublicID | default "N/A" }}</td>
          <td style="padding:10px 8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .Email }}</td>
          <td style="padding:10px 8px; border-bottom:1px solid #1e1e1e; text-align:center;">
            <span style="color:{{ .StatusColor }}; font-weight:600; font-size:13px;">{{ .StatusText }}</span>
          </td>
          <td style="padding:10px 8px; border-bottom:1px solid #1e1e1e; color:{{ .DetailColor }}; font-size:12px; word-break:break-word;">{{ .Detail | trunc 200 | default "-" }}</td>
        </tr>
        {{ end }}
      </table>` + baseFooter

const adminReportBody = baseHeader + `
      <h2 style="margin:0 0 8px; color:#f9fafb; font-size:18px;">Daily renewals report</h2>
      <p style="margin:0 0 24px; color:#6b7280; font-size:13px;">{{ .ReportDate }}</p>
      <h3 style="color:#f59e0b; font-size:15px;">Expiring soon ({{ len .ExpiringSoon }})</h3>
      <table style="width:100%; border-collapse:collapse; margin-bottom:24px;">
        {{ range .ExpiringSoon }}
        <tr>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .UserName }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .PlanName }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#f59e0b; font-size:13px;">{{ .ExpiryDate }}</td>
        </tr>
        {{ else }}
        <tr><td style="padding:8px; color:#6b7280; font-size:13px;">No plans expiring soon.</td></tr>
        {{ end }}
      </table>
      <h3 style="color:#ef4444; font-size:15px;">Recently expired ({{ len .RecentlyExpired }})</h3>
      <table style="width:100%; border-collapse:collapse;">
        {{ range .RecentlyExpired }}
        <tr>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .UserName }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .PlanName }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#ef4444; font-size:13px;">{{ .ExpiryDate }}</td>
        </tr>
        {{ else }}
        <tr><td style="padding:8px; color:#6b7280; font-size:13px;">No recently expired plans.</td></tr>
        {{ end }}
      </table>` + baseFooter

const salesReportBody = baseHeader + `
      <h2 style="margin:0 0 8px; color:#f9fafb; font-size:18px;">Daily sales report</h2>
      <p style="margin:0 0 24px; color:#6b7280; font-size:13px;">{{ .ReportDate }}</p>
      <p style="color:#d1d5db; font-size:14px;">
        Total revenue: <strong style="color:#10b981;">${{ printf "%.2f" .TotalRevenue }}</strong>
      </p>
      <h3 style="color:#f9fafb; font-size:15px;">Plan sales ({{ len .PlanSales }})</h3>
      <table style="width:100%; border-collapse:collapse; margin-bottom:24px;">
        {{ range .PlanSales }}
        <tr>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .ClientName }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .Item }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#10b981; font-size:13px;">${{ printf "%.2f" .Amount }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#6b7280; font-size:13px;">{{ .Time }}</td>
        </tr>
        {{ else }}
        <tr><td style="padding:8px; color:#6b7280; font-size:13px;">No plan sales.</td></tr>
        {{ end }}
      </table>
      <h3 style="color:#f9fafb; font-size:15px;">Food sales ({{ len .FoodSales }})</h3>
      <table style="width:100%; border-collapse:collapse;">
        {{ range .FoodSales }}
        <tr>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .ClientName }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#d1d5db; font-size:13px;">{{ .Item }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#10b981; font-size:13px;">${{ printf "%.2f" .Amount }}</td>
          <td style="padding:8px; border-bottom:1px solid #1e1e1e; color:#6b7280; font-size:13px;">{{ .Time }}</td>
        </tr>
        {{ else }}
        <tr><td style="padding:8px; color:#6b7280; font-size:13px;">No food sales.</td></tr>
        {{ end }}
      </table>` + baseFooter
